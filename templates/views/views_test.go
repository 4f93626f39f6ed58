package views

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

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func testSite() content.Site {
	return content.Site{
		Name:        "Liora",
		Description: "Portfolio",
		URL:         "https://example.com",
		Hero:        content.Hero{Headline: "Hi, I'm Liora"},
		Experiences: []content.Experience{{
			Company:      "Acme",
			Role:         "Lead",
			Period:       "2020 - 2024",
			Achievements: []string{"Cut build time by **50%** overall"},
		}},
	}
}

func TestProjectsViewWithFilters(t *testing.T) {
	data := ProjectsSection{
		State: portfolio.ViewState{ActiveTab: portfolio.TypeCompany, CompanyFilter: "Acme", CategoryFilter: portfolio.All},
		Mode:  portfolio.ModeCompanyFiltered,
		Projects: []portfolio.Project{
			{ID: "erp", Title: "ERP", Type: portfolio.TypeCompany, Category: portfolio.CategoryArchitecture},
		},
		Tabs: []Link{
			{Label: "Company", Href: "/?tab=company", HXGet: "/p/public/projects?tab=company", Active: true, Count: 3},
			{Label: "Personal", Href: "/?tab=personal", HXGet: "/p/public/projects?tab=personal", Count: 2},
		},
		Companies:   []Link{{Label: "All", Href: "/?tab=company"}, {Label: "Acme", Active: true, Href: "/?company=Acme&tab=company"}},
		Categories:  []Link{{Label: "All", Active: true}},
		Reset:       Link{Label: "Reset filters", Href: "/?tab=company", HXGet: "/p/public/projects?tab=company"},
		ShowFilters: true,
		ShowReset:   true,
	}

	got := render(t, ProjectsView(data))

	assert.Contains(t, got, `id="projects-view"`)
	assert.Contains(t, got, `data-mode="company_filtered"`)
	assert.Contains(t, got, `id="project-filters"`)
	assert.Contains(t, got, `hx-get="/p/public/projects?tab=personal"`)
	assert.Contains(t, got, `href="/?company=Acme&amp;tab=company"`)
	assert.Contains(t, got, `data-project-id="erp"`)
	assert.Contains(t, got, "Reset filters")
	assert.NotContains(t, got, `id="projects-empty"`)
}

func TestProjectsViewEmptyState(t *testing.T) {
	data := ProjectsSection{
		State:       portfolio.ViewState{ActiveTab: portfolio.TypeCompany, CompanyFilter: "Acme", CategoryFilter: "Mobile"},
		Mode:        portfolio.ModeCompanyFiltered,
		Reset:       Link{Label: "Reset filters", Href: "/?tab=company", HXGet: "/p/public/projects?tab=company"},
		ShowFilters: true,
	}

	got := render(t, ProjectsView(data))

	assert.Contains(t, got, `id="projects-empty"`)
	assert.Contains(t, got, "Reset filters")
	assert.NotContains(t, got, `id="projects-grid"`)
}

func TestProjectsViewPersonalHidesFilters(t *testing.T) {
	data := ProjectsSection{
		State: portfolio.ViewState{ActiveTab: portfolio.TypePersonal, CompanyFilter: "Acme", CategoryFilter: portfolio.All},
		Mode:  portfolio.ModePersonal,
	}

	got := render(t, ProjectsView(data))

	assert.Contains(t, got, `data-tab="personal"`)
	assert.NotContains(t, got, `id="project-filters"`)
}

func TestLandingPage(t *testing.T) {
	got := render(t, LandingPage(LandingPageData{Site: testSite()}))

	assert.Contains(t, got, "<title>Liora</title>")
	assert.Contains(t, got, `id="hero"`)
	assert.Contains(t, got, "Hi, I&#39;m Liora")
	assert.Contains(t, got, `<strong class="text-gray-900">50%</strong>`)
	assert.Contains(t, got, `id="projects"`)
	assert.Contains(t, got, `id="contact-form"`)
}

func TestProjectDetails(t *testing.T) {
	got := render(t, ProjectDetails(ProjectDetailsData{
		Site: testSite(),
		Project: portfolio.Project{
			ID:      "notes",
			Title:   "Notes",
			Type:    portfolio.TypePersonal,
			Company: "Personal",
			Tech:    []string{"PWA"},
			Link:    "https://notes.example.com",
			Metrics: []portfolio.Metric{{Label: "Access", Value: "Offline"}},
		},
		Details: portfolio.Details{Sections: []portfolio.Section{{Heading: "Offline first", Bullets: []string{"IndexedDB"}}}},
		BackURL: "/?tab=personal",
	}))

	assert.Contains(t, got, "<title>Notes | Liora</title>")
	assert.Contains(t, got, `data-layout="personal"`)
	assert.Contains(t, got, `href="/?tab=personal"`)
	assert.Contains(t, got, "Offline first")
	assert.Contains(t, got, `href="https://notes.example.com"`)
	assert.Contains(t, got, "The Product")
}

func TestNotFound(t *testing.T) {
	got := render(t, NotFound(testSite()))
	assert.Contains(t, got, `id="not-found"`)
}

func TestEmphasisParts(t *testing.T) {
	assert.Equal(t, []emphasisPart{
		{Text: "Cut build time by "},
		{Text: "50%", Strong: true},
		{Text: " overall"},
	}, emphasisParts("Cut build time by **50%** overall"))

	assert.Equal(t, []emphasisPart{{Text: "open "}, {Text: "marker"}}, emphasisParts("open **marker"))
	assert.Empty(t, emphasisParts(""))
}

func TestActiveLinkIsMarkedCurrent(t *testing.T) {
	got := render(t, chip(Link{Label: "Acme", Href: "/?company=Acme&tab=company", HXGet: "/p/public/projects?company=Acme&tab=company", Active: true}))

	assert.Contains(t, got, `aria-current="true"`)
	assert.Contains(t, got, `hx-target="#projects-view"`)
	assert.Contains(t, got, ">Acme</a>")

	got = render(t, chip(Link{Label: "Beta", Href: "/?company=Beta&tab=company"}))
	assert.NotContains(t, got, "aria-current")
}
