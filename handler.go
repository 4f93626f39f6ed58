package main

import (
	"embed"
	"net/http"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ip812/portfolio/config"
	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/logger"
)

//go:embed static
var staticFS embed.FS

type MessageSender interface {
	SendMsg(channelID string, text string) error
}

type Handler struct {
	config        *config.Config
	formDecoder   *form.Decoder
	formValidator *validator.Validate
	tracer        oteltrace.Tracer
	slacknotifier MessageSender
	content       *content.Store
	log           logger.Logger

	db DBWrapper
}

func (hnd *Handler) StaticFiles() http.Handler {
	if hnd.config.App.Env == config.Local {
		hnd.log.Info("serving static files from local directory")
		return http.StripPrefix("/static", http.FileServer(http.Dir("static")))
	}

	hnd.log.Info("serving static files from embedded FS")
	return http.StripPrefix("/", http.FileServer(http.FS(staticFS)))
}

func (hnd *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte{})
}
