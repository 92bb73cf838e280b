package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	Assert := assert.New(t)

	Assert.True(IsAuth(FromStatus(http.StatusUnauthorized, "", nil)))
	Assert.True(IsAuth(FromStatus(http.StatusForbidden, "forbidden", nil)))
	Assert.True(IsRejected(FromStatus(http.StatusUnprocessableEntity, "Meja sudah dipesan", nil)))
	Assert.True(IsRejected(FromStatus(http.StatusInternalServerError, "", nil)))
	Assert.True(IsNetwork(FromStatus(0, "", nil)))
}

func TestKindSurvivesWrap(t *testing.T) {
	err := errors.Wrap(Validation("Silakan pilih meja"), "failed Submit()")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Silakan pilih meja", UserMessage(err))
}

func TestUserMessage(t *testing.T) {
	Assert := assert.New(t)

	Assert.Equal("Meja sudah dipesan", UserMessage(Rejected(422, "Meja sudah dipesan", nil)))
	Assert.Equal(MsgRejected, UserMessage(Rejected(422, "", nil)))
	Assert.Equal(MsgNetwork, UserMessage(Network(errors.New("dial tcp: connection refused"))))
	Assert.Equal(MsgAuth, UserMessage(Auth(401, "")))
	Assert.Equal(MsgUnknown, UserMessage(errors.New("boom")))
	Assert.Equal("", UserMessage(nil))
}
