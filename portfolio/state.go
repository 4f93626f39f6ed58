package portfolio

import (
	"net/url"
	"strings"
)

// Query parameter names of the projects view.
const (
	TabParam      = "tab"
	CompanyParam  = "company"
	CategoryParam = "category"
)

type Mode string

const (
	ModeCompanyUnfiltered Mode = "company_unfiltered"
	ModeCompanyFiltered   Mode = "company_filtered"
	ModePersonal          Mode = "personal"
)

// ViewState is what one visitor has selected on the projects view.
type ViewState struct {
	ActiveTab      ProjectType
	CompanyFilter  string
	CategoryFilter string
}

func DefaultViewState() ViewState {
	return ViewState{
		ActiveTab:      TypeCompany,
		CompanyFilter:  All,
		CategoryFilter: All,
	}
}

// Filtered reports whether any filter holds a value other than All,
// regardless of the active tab.
func (s ViewState) Filtered() bool {
	return s.CompanyFilter != All || s.CategoryFilter != All
}

func (s ViewState) Mode() Mode {
	switch {
	case s.ActiveTab == TypePersonal:
		return ModePersonal
	case s.Filtered():
		return ModeCompanyFiltered
	default:
		return ModeCompanyUnfiltered
	}
}

// ParseTab maps a tab query value to a project type. Anything other than
// company or personal falls back to Company.
func ParseTab(v string) ProjectType {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "personal":
		return TypePersonal
	default:
		return TypeCompany
	}
}

// ParseViewState builds a state from raw query values. Filter values are
// not checked against a catalog here; NewViewModel clamps them.
func ParseViewState(tab, company, category string) ViewState {
	s := DefaultViewState()
	s.ActiveTab = ParseTab(tab)
	if company = strings.TrimSpace(company); company != "" {
		s.CompanyFilter = company
	}
	if category = strings.TrimSpace(category); category != "" {
		s.CategoryFilter = category
	}
	return s
}

// ViewStateFromQuery reads the state from a URL query string.
func ViewStateFromQuery(q url.Values) ViewState {
	return ParseViewState(q.Get(TabParam), q.Get(CompanyParam), q.Get(CategoryParam))
}

// URLQuery is the shareable projection of the state: only the tab.
func (s ViewState) URLQuery() url.Values {
	return url.Values{TabParam: []string{ParseTab(string(s.ActiveTab)).Tab()}}
}

// Query carries the whole state, omitting filters that are All.
func (s ViewState) Query() url.Values {
	q := s.URLQuery()
	if s.CompanyFilter != "" && s.CompanyFilter != All {
		q.Set(CompanyParam, s.CompanyFilter)
	}
	if s.CategoryFilter != "" && s.CategoryFilter != All {
		q.Set(CategoryParam, s.CategoryFilter)
	}
	return q
}

// ShareURL is the location written to the address bar for this state.
func (s ViewState) ShareURL() string {
	return "/?" + s.URLQuery().Encode()
}
