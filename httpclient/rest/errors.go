package rest

import (
	"errors"
	"fmt"
)

// DecodeError reports a 2xx response whose body is not valid JSON for the
// requested type.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("httpclient/rest: decode response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecode checks if the error is a response decoding failure.
func IsDecode(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
