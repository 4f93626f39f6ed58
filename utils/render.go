package utils

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ip812/portfolio/status"
)

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	RenderWithStatus(w, r, http.StatusOK, c)
}

// RenderWithStatus buffers the component so a failed render still produces
// a clean 500 instead of a half-written page.
func RenderWithStatus(w http.ResponseWriter, r *http.Request, code int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		http.Error(w, status.ErrRenderingView.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

type TemplHandler func(w http.ResponseWriter, r *http.Request) error

// MakeTemplHandler renders the error a handler returns as a toast. Toasts
// keep their own status code; any other error becomes a 500.
func MakeTemplHandler(fn TemplHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var toast status.Toast
		if !errors.As(err, &toast) {
			toast = status.ErrorInternalServerError(status.ErrDB)
		}
		RenderWithStatus(w, r, toast.StatusCode, toast)
	}
}
