package status

import (
	"fmt"
	"net/http"
)

var (
	WarnInvalidEmail    = fmt.Errorf("please enter a valid email address")
	WarnMissingName     = fmt.Errorf("please tell me your name")
	WarnMessageLength   = fmt.Errorf("message should be between 10 and 2000 characters")
	WarnInvalidRequest  = fmt.Errorf("the request could not be understood")
	WarnTooManyMessages = fmt.Errorf("you have sent a few messages already, please try again later")
)

func WarningStatusBadRequest(err error) Toast {
	return Toast{
		Level:      LevelWarning,
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}

func WarningStatusTooManyRequests(err error) Toast {
	return Toast{
		Level:      LevelWarning,
		Message:    err.Error(),
		StatusCode: http.StatusTooManyRequests,
	}
}
