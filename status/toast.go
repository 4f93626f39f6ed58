package status

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is a short message shown to the visitor. It is returned as an
// error from handlers and rendered as the response body.
type Toast struct {
	Level      Level
	Message    string
	StatusCode int
}

var _ templ.Component = Toast{}

func Success(message string) Toast {
	return Toast{
		Level:      LevelSuccess,
		Message:    message,
		StatusCode: http.StatusOK,
	}
}

func (t Toast) Error() string {
	return t.Message
}

func (t Toast) classes() string {
	switch t.Level {
	case LevelSuccess:
		return "border-emerald-500/40 bg-emerald-500/10 text-emerald-700"
	case LevelWarning:
		return "border-amber-500/40 bg-amber-500/10 text-amber-700"
	default:
		return "border-red-500/40 bg-red-500/10 text-red-700"
	}
}

func (t Toast) Render(ctx context.Context, w io.Writer) error {
	return toastView(t).Render(ctx, w)
}
