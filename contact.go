package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/godruoyi/go-snowflake"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ip812/portfolio/database"
	"github.com/ip812/portfolio/notifier"
	"github.com/ip812/portfolio/o11y"
	"github.com/ip812/portfolio/status"
	"github.com/ip812/portfolio/utils"
)

const (
	maxMessagesPerVisitor = 3
	contactMessageWindow  = time.Hour
	contactSuccessMessage = "Thanks! Your message is on its way."
)

type contactForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Message string `form:"message" validate:"required,min=10,max=2000"`
}

func (f *contactForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// contactWarning maps the first failed field to the message shown to
// the visitor.
func contactWarning(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return status.WarnInvalidRequest
	}

	switch verrs[0].Field() {
	case "Name":
		return status.WarnMissingName
	case "Email":
		return status.WarnInvalidEmail
	case "Message":
		return status.WarnMessageLength
	default:
		return status.WarnInvalidRequest
	}
}

func (hnd *Handler) CreateContactMessage(w http.ResponseWriter, r *http.Request) error {
	ctx, span := hnd.tracer.Start(r.Context(), "CreateContactMessage")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		hnd.log.Warn("%s: %v", status.ErrParsingForm, err)
		o11y.ContactMessages.WithLabelValues("invalid").Inc()
		return status.WarningStatusBadRequest(status.WarnInvalidRequest)
	}

	var f contactForm
	if err := hnd.formDecoder.Decode(&f, r.PostForm); err != nil {
		hnd.log.Warn("%s: %v", status.ErrDecodingForm, err)
		o11y.ContactMessages.WithLabelValues("invalid").Inc()
		return status.WarningStatusBadRequest(status.WarnInvalidRequest)
	}
	f.normalize()

	if err := hnd.formValidator.Struct(f); err != nil {
		hnd.log.Debug("%s: %v", status.ErrFailedToValidateRequest, err)
		o11y.ContactMessages.WithLabelValues("invalid").Inc()
		return status.WarningStatusBadRequest(contactWarning(err))
	}

	db, err := hnd.db.DB()
	if err != nil {
		hnd.log.Error("contact message dropped: %v", err)
		span.SetStatus(codes.Error, err.Error())
		o11y.ContactMessages.WithLabelValues("db_not_ready").Inc()
		return status.ErrorInternalServerError(status.ErrDatabaseNotReady)
	}

	visitor := visitorID(w, r)
	span.SetAttributes(attribute.Int64("visitor.id", int64(visitor)))

	id := snowflake.ID()
	err = inTx(ctx, db, func(q *database.Queries) error {
		count, err := q.CountContactMessagesByVisitorSince(ctx, int64(visitor), time.Now().Add(-contactMessageWindow))
		if err != nil {
			return fmt.Errorf("%w: %w", status.ErrDB, err)
		}
		if count >= maxMessagesPerVisitor {
			return status.WarnTooManyMessages
		}

		if _, err := q.CreateContactMessage(ctx, database.CreateContactMessageParams{
			ID:        int64(id),
			VisitorID: int64(visitor),
			Name:      f.Name,
			Email:     f.Email,
			Message:   f.Message,
		}); err != nil {
			return fmt.Errorf("%w: %w", status.ErrCreateContactMessage, err)
		}
		return nil
	})
	switch {
	case errors.Is(err, status.WarnTooManyMessages):
		o11y.ContactMessages.WithLabelValues("rate_limited").Inc()
		return status.WarningStatusTooManyRequests(status.WarnTooManyMessages)
	case errors.Is(err, status.ErrDB):
		hnd.log.Error("failed to count contact messages for visitor %d: %v", visitor, err)
		span.SetStatus(codes.Error, err.Error())
		o11y.ContactMessages.WithLabelValues("error").Inc()
		return status.ErrorInternalServerError(status.ErrDB)
	case err != nil:
		hnd.log.Error("failed to store contact message %d: %v", id, err)
		span.SetStatus(codes.Error, err.Error())
		o11y.ContactMessages.WithLabelValues("error").Inc()
		return status.ErrorInternalServerError(status.ErrCreateContactMessage)
	}

	if channel := hnd.config.Slack.ContactChannelID; channel != "" && hnd.slacknotifier != nil {
		if err := hnd.slacknotifier.SendMsg(channel, notifier.ContactMessageText(id, f.Name, f.Email, f.Message)); err != nil {
			hnd.log.Warn("contact message %d stored but not announced: %v", id, err)
		}
	}

	o11y.ContactMessages.WithLabelValues("sent").Inc()
	hnd.log.Info("contact message %d stored", id)
	utils.Render(w, r, status.Success(contactSuccessMessage))
	return nil
}
