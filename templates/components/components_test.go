package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/portfolio"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(ctx, &b))
	return b.String()
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Projects | Liora", PageTitle("Projects", "Liora"))
	assert.Equal(t, "Projects | Liora", PageTitle("Projects | Liora", "Liora"))
	assert.Equal(t, "Liora", PageTitle("", "Liora"))
	assert.Equal(t, "Liora", PageTitle("Liora", "Liora"))
}

func TestLayoutRendersChildrenInsideMain(t *testing.T) {
	site := content.Site{
		Name:        "Liora",
		Description: "Portfolio",
		Nav:         []content.NavItem{{Title: "Projects", Href: "/#projects"}},
	}
	body := templ.Raw(`<p id="child">hello</p>`)

	got := render(t, templ.WithChildren(context.Background(), body), Layout("Home", site))

	assert.True(t, strings.HasPrefix(got, "<!doctype html>"))
	assert.Contains(t, got, "<title>Home | Liora</title>")
	assert.Contains(t, got, `<main id="main"><p id="child">hello</p></main>`)
	assert.Contains(t, got, `href="/#projects"`)
	assert.Contains(t, got, `name="htmx-config"`)
	assert.Contains(t, got, `&#34;responseHandling&#34;`)
}

func TestProjectCard(t *testing.T) {
	p := portfolio.Project{
		ID:          "erp",
		Title:       "ERP <beta>",
		Description: "An ERP",
		Category:    portfolio.CategoryArchitecture,
		Tech:        []string{"React", "Umi", "TypeScript", "Ant Design", "Vite"},
		Color:       "text-blue-600",
		Icon:        "database",
	}

	got := render(t, context.Background(), ProjectCard(p))

	assert.Contains(t, got, `href="/p/public/projects/erp"`)
	assert.Contains(t, got, "ERP &lt;beta&gt;")
	assert.Contains(t, got, "Architecture")
	assert.Contains(t, got, ">TypeScript<")
	assert.NotContains(t, got, ">Ant Design<")
	assert.Contains(t, got, ">+2<")
	assert.Contains(t, got, "text-blue-600")
	assert.NotContains(t, got, "text-gray-700")
}

func TestCardTech(t *testing.T) {
	shown, hidden := CardTech([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, shown)
	assert.Zero(t, hidden)

	shown, hidden = CardTech([]string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "b", "c"}, shown)
	assert.Equal(t, 1, hidden)
}

func TestSiteHeaderSanitizesNavLinks(t *testing.T) {
	site := content.Site{
		Name: "Liora",
		Nav:  []content.NavItem{{Title: "Evil", Href: "javascript:alert(1)"}},
	}

	got := render(t, context.Background(), SiteHeader(site))

	assert.NotContains(t, got, "javascript")
	assert.Contains(t, got, `href="about:invalid#TemplFailedSanitizationURL"`)
	assert.NotContains(t, got, "GitHub")
}

func TestFooterPrefersFullName(t *testing.T) {
	got := render(t, context.Background(), Footer(content.Site{Name: "Liora", FullName: "Liora Chen"}))
	assert.Contains(t, got, "Liora Chen. All rights reserved.")

	got = render(t, context.Background(), Footer(content.Site{Name: "Liora"}))
	assert.Contains(t, got, " Liora. All rights reserved.")
}

func TestIconFallsBack(t *testing.T) {
	got := render(t, context.Background(), Icon("unknown", "h-4 w-4"))
	assert.Contains(t, got, fallbackIcon)
	assert.Contains(t, got, `class="h-4 w-4"`)
}
