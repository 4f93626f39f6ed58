package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ip812/portfolio/status"
)

func TestMakeTemplHandlerRendersToast(t *testing.T) {
	h := MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		return status.WarningStatusBadRequest(status.WarnInvalidEmail)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), status.WarnInvalidEmail.Error())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestMakeTemplHandlerHidesUnexpectedErrors(t *testing.T) {
	h := MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("pq: connection refused")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestMakeTemplHandlerSuccess(t *testing.T) {
	h := MakeTemplHandler(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestIsHTMXRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMXRequest(r))

	r.Header.Set(HTMXRequestHeader, "true")
	assert.True(t, IsHTMXRequest(r))
	assert.False(t, IsHTMXRequest(nil))
}

func TestCn(t *testing.T) {
	assert.Equal(t, "rounded-2xl p-3 text-blue-600", Cn("rounded-2xl p-3 text-gray-500", "", "text-blue-600"))
	assert.Equal(t, "p-3", Cn("px-2 py-1", "p-3"))
}
