package views

import (
	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/portfolio"
)

// Link targets one projects view state: Href for full page loads and
// HXGet for in-place fragment swaps.
type Link struct {
	Label  string
	Href   string
	HXGet  string
	Active bool
	Count  int
}

type ProjectsSection struct {
	State    portfolio.ViewState
	Mode     portfolio.Mode
	Projects []portfolio.Project

	Tabs       []Link
	Companies  []Link
	Categories []Link
	Reset      Link

	ShowFilters bool
	ShowReset   bool
}

type LandingPageData struct {
	Site     content.Site
	Projects ProjectsSection
}

type ProjectDetailsData struct {
	Site    content.Site
	Project portfolio.Project
	Details portfolio.Details
	BackURL string
}
