package telegram

import (
	"sync"

	"RestoReservasi/pkg/logging"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pkg/errors"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

var (
	botGlobal *Bot
	mu        sync.Mutex
)

func NewBot(token string, chatID int64, debug bool) (*Bot, error) {
	logger := logging.GetLogger()
	logger.Println("NewBot:>Start")
	defer logger.Println("NewBot:>End")

	if token == "" {
		return nil, errors.New("telegram bot token is empty")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is empty")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed tgbotapi.NewBotAPI()")
	}
	api.Debug = debug
	logger.Infof("Authorized on telegram account %s", api.Self.UserName)

	b := &Bot{api: api, chatID: chatID}
	mu.Lock()
	botGlobal = b
	mu.Unlock()
	return b, nil
}

func (b *Bot) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return errors.Wrap(err, "failed bot.Send()")
	}
	return nil
}

// SendMessage sends through the bot created last. Without a bot it is a no-op.
func SendMessage(text string) error {
	mu.Lock()
	b := botGlobal
	mu.Unlock()
	if b == nil {
		return nil
	}
	return b.SendMessage(text)
}

func SendMessageToTelegramWithLogError(text string) {
	if err := SendMessage(text); err != nil {
		logger := logging.GetLogger()
		logger.Errorf("failed telegram.SendMessage(), error: %v", err)
	}
}
