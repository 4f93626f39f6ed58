package main

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"
)

const (
	VisitorCookieKey    = "IP812_PORTFOLIO_VISITOR"
	visitorCookieMaxAge = 365 * 24 * time.Hour
)

func generateVisitorID() uint64 {
	return snowflake.ID()
}

func parseVisitorID(v string) (uint64, bool) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 || id > math.MaxInt64 {
		return 0, false
	}
	return id, true
}

// visitorID returns the id stored in the visitor cookie, issuing a new
// one when the cookie is missing or malformed.
func visitorID(w http.ResponseWriter, r *http.Request) uint64 {
	if c, err := r.Cookie(VisitorCookieKey); err == nil {
		if id, ok := parseVisitorID(c.Value); ok {
			return id
		}
	}

	id := generateVisitorID()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookieKey,
		Value:    strconv.FormatUint(id, 10),
		Path:     "/",
		MaxAge:   int(visitorCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
