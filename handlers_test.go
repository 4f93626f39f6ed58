package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/config"
	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/logger"
	"github.com/ip812/portfolio/o11y"
	"github.com/ip812/portfolio/utils"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendMsg(channelID string, text string) error {
	f.sent = append(f.sent, channelID+": "+text)
	return f.err
}

func newTestHandler(t *testing.T, cfg *config.Config) *Handler {
	t.Helper()
	c, err := content.LoadEmbedded()
	require.NoError(t, err)

	if cfg == nil {
		cfg = &config.Config{}
	}
	cfg.App.Env = config.Production
	cfg.Slack.ContactChannelID = "C123"

	return &Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:        o11y.NoopTracer(serviceName),
		slacknotifier: &fakeSender{},
		content:       content.NewStore(c),
		log:           logger.NewNop(),
		db:            NewSwappableDB(),
	}
}

func serve(t *testing.T, hnd *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newRouter(hnd).ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, hnd *Handler, target string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set(utils.HTMXRequestHeader, "true")
	}
	return serve(t, hnd, req)
}

func projectIDs(body string) []string {
	const marker = `data-project-id="`
	var out []string
	for {
		i := strings.Index(body, marker)
		if i < 0 {
			return out
		}
		body = body[i+len(marker):]
		out = append(out, body[:strings.Index(body, `"`)])
	}
}

func TestLandingPageDefaultsToCompanyTab(t *testing.T) {
	hnd := newTestHandler(t, nil)

	for _, target := range []string{"/", "/p/public/landing-page", "/?tab=garbled"} {
		rec := get(t, hnd, target, false)

		require.Equal(t, http.StatusOK, rec.Code, target)
		body := rec.Body.String()
		assert.True(t, strings.HasPrefix(body, "<!doctype html><html"), target)
		assert.Contains(t, body, `data-tab="company"`, target)
		assert.Contains(t, body, `data-mode="company_unfiltered"`, target)
		assert.Contains(t, body, `id="project-filters"`, target)
		assert.Len(t, projectIDs(body), 10, target)
	}
}

func TestLandingPagePersonalTab(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/?tab=personal", false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-mode="personal"`)
	assert.NotContains(t, body, `id="project-filters"`)
	assert.Equal(t,
		[]string{"story-craft", "note-pwa", "the-mouth-app", "blog", "emmo", "expense-tracker"},
		projectIDs(body),
	)
}

func TestProjectsFragmentReplacesURLWithTabOnly(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects?tab=company&company=DingSheng", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<html")
	assert.True(t, strings.HasPrefix(body, `<div id="projects-view"`))
	assert.Equal(t, "/?tab=company", rec.Header().Get(utils.HTMXReplaceURLHeader))
	assert.Equal(t, []string{"simulation-platform", "overseas-live-class"}, projectIDs(body))
	assert.Contains(t, body, `data-mode="company_filtered"`)
	assert.Contains(t, body, "Reset filters")
}

func TestProjectsFragmentEmptyResult(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects?company=DingSheng&category=Performance", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Empty(t, projectIDs(body))
	assert.Contains(t, body, `id="projects-empty"`)
	assert.Contains(t, body, `hx-get="/p/public/projects?tab=company"`)
}

func TestProjectsFragmentClampsUnknownFilters(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects?company=Zeta&category=Quantum", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-mode="company_unfiltered"`)
	assert.Len(t, projectIDs(body), 10)
}

func TestTabLinksKeepFiltersByDefault(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects?tab=personal&company=DingSheng", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "/?tab=personal", rec.Header().Get(utils.HTMXReplaceURLHeader))
	assert.Len(t, projectIDs(body), 6)
	assert.Contains(t, body, `hx-get="/p/public/projects?company=DingSheng&amp;tab=company"`)
}

func TestTabLinksResetFiltersWhenConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.Portfolio.ResetFiltersOnTabSwitch = true
	hnd := newTestHandler(t, cfg)

	rec := get(t, hnd, "/p/public/projects?tab=personal&company=DingSheng", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `company=DingSheng&amp;tab=company`)
	assert.Contains(t, body, `hx-get="/p/public/projects?tab=company"`)
}

func TestProjectsWithoutHTMXRendersFullPage(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects?tab=personal", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<html")
	assert.Empty(t, rec.Header().Get(utils.HTMXReplaceURLHeader))
}

func TestProjectDetails(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects/note-pwa", false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="project-details" data-project-id="note-pwa"`)
	assert.Contains(t, body, `href="/?tab=personal#projects"`)
}

func TestProjectDetailsNotFound(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/p/public/projects/missing", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="not-found"`)

	rec = get(t, hnd, "/p/public/projects/missing", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-level="error"`)
	assert.Contains(t, rec.Body.String(), "project not found")
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestLegacyProjectLinkRedirects(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/projects/blog", false)

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/p/public/projects/blog", rec.Header().Get("Location"))
}

func TestUnknownRouteRedirectsHome(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/nowhere", false)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/healthz", false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	hnd := newTestHandler(t, nil)

	rec := get(t, hnd, "/static/css/site.css", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "#projects-view")
}

func postContact(t *testing.T, hnd *Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/public/v0/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(t, hnd, req)
}

func TestCreateContactMessageValidation(t *testing.T) {
	valid := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there, nice portfolio!"},
	}

	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{name: "missing name", field: "name", value: "   ", want: "please tell me your name"},
		{name: "invalid email", field: "email", value: "ada-at-example", want: "please enter a valid email address"},
		{name: "short message", field: "message", value: "hi", want: "message should be between 10 and 2000 characters"},
		{name: "long message", field: "message", value: strings.Repeat("x", 2001), want: "message should be between 10 and 2000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hnd := newTestHandler(t, nil)
			values := url.Values{}
			for k, v := range valid {
				values[k] = v
			}
			values.Set(tt.field, tt.value)

			rec := postContact(t, hnd, values)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `data-level="warning"`)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestCreateContactMessageWithoutDatabase(t *testing.T) {
	hnd := newTestHandler(t, nil)
	sender := hnd.slacknotifier.(*fakeSender)

	rec := postContact(t, hnd, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello there, nice portfolio!"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-level="error"`)
	assert.Contains(t, rec.Body.String(), "database not initialized")
	assert.Empty(t, sender.sent)
}

func TestContactWarningFallsBackToInvalidRequest(t *testing.T) {
	assert.Equal(t, "the request could not be understood", contactWarning(errors.New("boom")).Error())
}
