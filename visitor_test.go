package main

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorIDIssuesCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	id := visitorID(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookieKey, cookies[0].Name)
	assert.Equal(t, strconv.FormatUint(id, 10), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestVisitorIDReusesCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookieKey, Value: "42"})

	assert.Equal(t, uint64(42), visitorID(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestParseVisitorID(t *testing.T) {
	tests := map[string]bool{
		"42":                   true,
		"0":                    false,
		"-1":                   false,
		"user_42":              false,
		"":                     false,
		"18446744073709551615": false,
	}
	for in, ok := range tests {
		_, got := parseVisitorID(in)
		assert.Equal(t, ok, got, "parseVisitorID(%q)", in)
	}
}
