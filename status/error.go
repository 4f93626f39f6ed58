package status

import (
	"fmt"
	"net/http"
)

var (
	ErrDatabaseNotReady        = fmt.Errorf("database not initialized")
	ErrDB                      = fmt.Errorf("unexpected database error")
	ErrParsingForm             = fmt.Errorf("failed to parse a form")
	ErrDecodingForm            = fmt.Errorf("failed to decode a form")
	ErrFailedToValidateRequest = fmt.Errorf("failed to validate a request")
	ErrRenderingView           = fmt.Errorf("failed to render a view")

	ErrCreateContactMessage = fmt.Errorf("failed to send your message")
	ErrProjectNotFound      = fmt.Errorf("project not found")
)

func ErrorNotFound(err error) Toast {
	return Toast{
		Level:      LevelError,
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}

func ErrorInternalServerError(err error) Toast {
	return Toast{
		Level:      LevelError,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
