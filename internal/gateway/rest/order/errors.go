package order

import (
	"fmt"
	"net/http"
)

// StatusError - ответ хранилища с кодом вне 2xx.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
}
