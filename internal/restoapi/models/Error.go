package models

import "fmt"

// ErrorAPI is the body the backend sends with any non-2xx answer (Laravel style).
type ErrorAPI struct {
	Status  int                 `json:"-"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e *ErrorAPI) Error() string {
	return fmt.Sprintf("status:%d; message:%s; errors:%v;", e.Status, e.Message, e.Errors)
}

// Message is the plain `{message}` acknowledgement.
type Message struct {
	Message string `json:"message"`
}
