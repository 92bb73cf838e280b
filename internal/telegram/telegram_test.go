package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBotRequiresTokenAndChat(t *testing.T) {
	_, err := NewBot("", 1, false)
	assert.Error(t, err)

	_, err = NewBot("123:abc", 0, false)
	assert.Error(t, err)
}

func TestSendMessageWithoutBot(t *testing.T) {
	assert.NoError(t, SendMessage("hello"))
	SendMessageToTelegramWithLogError("hello")
}
