package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVisitor = "42"

var (
	countMessagesQuery  = regexp.QuoteMeta("SELECT count(*) FROM contact_messages")
	insertMessageQuery  = regexp.QuoteMeta("INSERT INTO contact_messages")
	validContactMessage = url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there, nice portfolio!"},
	}
)

func newContactHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	hnd := newTestHandler(t, nil)
	hnd.db.(*SwappableDB).Swap(db)
	return hnd, mock
}

func postContactAs(t *testing.T, hnd *Handler, visitor string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/public/v0/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: VisitorCookieKey, Value: visitor})
	return serve(t, hnd, req)
}

func expectCount(mock sqlmock.Sqlmock, count int64) {
	mock.ExpectQuery(countMessagesQuery).
		WithArgs(int64(42), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestCreateContactMessageStoresAndNotifies(t *testing.T) {
	hnd, mock := newContactHandler(t)
	sender := hnd.slacknotifier.(*fakeSender)

	mock.ExpectBegin()
	expectCount(mock, 2)
	mock.ExpectQuery(insertMessageQuery).
		WithArgs(sqlmock.AnyArg(), int64(42), "Ada", "ada@example.com", "Hello there, nice portfolio!").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-level="success"`)
	assert.Contains(t, rec.Body.String(), "Your message is on its way.")
	require.Len(t, sender.sent, 1)
	assert.True(t, strings.HasPrefix(sender.sent[0], "C123: *New contact message*"))
	assert.Contains(t, sender.sent[0], "Ada <ada@example.com>")
	assert.Contains(t, sender.sent[0], ">Hello there, nice portfolio!")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessageWithoutSlackChannel(t *testing.T) {
	hnd, mock := newContactHandler(t)
	hnd.config.Slack.ContactChannelID = ""
	sender := hnd.slacknotifier.(*fakeSender)

	mock.ExpectBegin()
	expectCount(mock, 0)
	mock.ExpectQuery(insertMessageQuery).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessageSlackFailureStillSucceeds(t *testing.T) {
	hnd, mock := newContactHandler(t)
	sender := hnd.slacknotifier.(*fakeSender)
	sender.err = errors.New("channel_not_found")

	mock.ExpectBegin()
	expectCount(mock, 0)
	mock.ExpectQuery(insertMessageQuery).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-level="success"`)
	assert.Len(t, sender.sent, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessageRateLimited(t *testing.T) {
	for _, count := range []int64{3, 7} {
		hnd, mock := newContactHandler(t)
		sender := hnd.slacknotifier.(*fakeSender)

		mock.ExpectBegin()
		expectCount(mock, count)
		mock.ExpectRollback()

		rec := postContactAs(t, hnd, testVisitor, validContactMessage)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-level="warning"`)
		assert.Contains(t, rec.Body.String(), "you have sent a few messages already")
		assert.Empty(t, sender.sent)
		require.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestCreateContactMessageCountFails(t *testing.T) {
	hnd, mock := newContactHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(countMessagesQuery).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected database error")
	assert.NotContains(t, rec.Body.String(), "connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessageInsertFails(t *testing.T) {
	hnd, mock := newContactHandler(t)
	sender := hnd.slacknotifier.(*fakeSender)

	mock.ExpectBegin()
	expectCount(mock, 0)
	mock.ExpectQuery(insertMessageQuery).WillReturnError(errors.New("duplicate key value"))
	mock.ExpectRollback()

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-level="error"`)
	assert.Contains(t, rec.Body.String(), "failed to send your message")
	assert.Empty(t, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateContactMessageCommitFails(t *testing.T) {
	hnd, mock := newContactHandler(t)
	sender := hnd.slacknotifier.(*fakeSender)

	mock.ExpectBegin()
	expectCount(mock, 0)
	mock.ExpectQuery(insertMessageQuery).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	rec := postContactAs(t, hnd, testVisitor, validContactMessage)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to send your message")
	assert.Empty(t, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}
