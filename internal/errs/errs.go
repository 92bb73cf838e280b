package errs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindAuth
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

const (
	MsgNetwork  = "Tidak dapat terhubung ke server. Periksa koneksi internet Anda."
	MsgAuth     = "Sesi Anda telah berakhir. Silakan login kembali."
	MsgRejected = "Permintaan ditolak oleh server."
	MsgUnknown  = "Terjadi kesalahan. Silakan coba lagi."
)

// Error is the client-side error taxonomy. Status is 0 for anything that never got an HTTP answer.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
	err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

func (e *Error) Cause() error  { return e.err }
func (e *Error) Unwrap() error { return e.err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Network(err error) error {
	return &Error{Kind: KindNetwork, err: err}
}

func NetworkMessage(msg string) error {
	return &Error{Kind: KindNetwork, Message: msg}
}

func Auth(status int, msg string) error {
	return &Error{Kind: KindAuth, Status: status, Message: msg}
}

func Rejected(status int, msg string, fields map[string][]string) error {
	return &Error{Kind: KindRejected, Status: status, Message: msg, Fields: fields}
}

// FromStatus classifies a non-2xx HTTP answer.
func FromStatus(status int, msg string, fields map[string][]string) error {
	switch status {
	case 0:
		return NetworkMessage(msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return Auth(status, msg)
	default:
		return Rejected(status, msg, fields)
	}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNetwork(err error) bool    { return KindOf(err) == KindNetwork }
func IsAuth(err error) bool       { return KindOf(err) == KindAuth }
func IsRejected(err error) bool   { return KindOf(err) == KindRejected }

// UserMessage is what gets shown in a toast or modal: the server message verbatim when there is one,
// a generic text per kind otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return MsgUnknown
	}
	switch e.Kind {
	case KindValidation:
		return e.Message
	case KindNetwork:
		return MsgNetwork
	case KindAuth:
		if e.Message != "" {
			return e.Message
		}
		return MsgAuth
	case KindRejected:
		if e.Message != "" {
			return e.Message
		}
		return MsgRejected
	default:
		return MsgUnknown
	}
}
