package utils

import (
	"net/http"
	"strings"
)

const (
	HTMXRequestHeader    = "HX-Request"
	HTMXReplaceURLHeader = "HX-Replace-Url"
)

func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HTMXRequestHeader), "true")
}

// ReplaceURL asks htmx to rewrite the address bar in place, without
// adding a history entry.
func ReplaceURL(w http.ResponseWriter, url string) {
	w.Header().Set(HTMXReplaceURLHeader, url)
}
