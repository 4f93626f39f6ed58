package main

import (
	"github.com/ip812/portfolio/o11y"
	"github.com/ip812/portfolio/portfolio"
	"github.com/ip812/portfolio/templates/views"
)

const (
	projectsFragmentPath = "/p/public/projects"
	resetFiltersLabel    = "Reset filters"
)

var tabLabels = map[portfolio.ProjectType]string{
	portfolio.TypeCompany:  "Company",
	portfolio.TypePersonal: "Personal",
}

func stateLink(label string, s portfolio.ViewState, active bool) views.Link {
	q := s.Query().Encode()
	return views.Link{
		Label:  label,
		Href:   "/?" + q + "#projects",
		HXGet:  projectsFragmentPath + "?" + q,
		Active: active,
	}
}

// projectsSection lays out the view model for rendering. Every control
// links to the state its action leads to, computed on a clone.
func projectsSection(vm *portfolio.ViewModel) views.ProjectsSection {
	state := vm.State()
	opts := vm.Options()

	section := views.ProjectsSection{
		State:       state,
		Mode:        vm.Mode(),
		Projects:    vm.VisibleProjects(),
		ShowFilters: state.ActiveTab == portfolio.TypeCompany,
		ShowReset:   state.ActiveTab == portfolio.TypeCompany && state.Filtered(),
	}

	for _, tab := range []portfolio.ProjectType{portfolio.TypeCompany, portfolio.TypePersonal} {
		next := vm.Clone()
		next.SelectTab(tab)
		link := stateLink(tabLabels[tab], next.State(), tab == state.ActiveTab)
		link.Count = vm.Catalog().CountByType(tab)
		section.Tabs = append(section.Tabs, link)
	}

	for _, company := range opts.Companies {
		next := vm.Clone()
		next.SetCompanyFilter(company)
		section.Companies = append(section.Companies, stateLink(company, next.State(), company == state.CompanyFilter))
	}

	for _, category := range opts.Categories {
		next := vm.Clone()
		next.SetCategoryFilter(category)
		section.Categories = append(section.Categories, stateLink(category, next.State(), category == state.CategoryFilter))
	}

	reset := vm.Clone()
	reset.ResetFilters()
	section.Reset = stateLink(resetFiltersLabel, reset.State(), false)

	return section
}

func recordProjectsView(section views.ProjectsSection, partial bool) {
	p := "false"
	if partial {
		p = "true"
	}
	o11y.ProjectsViewRenders.WithLabelValues(section.State.ActiveTab.Tab(), string(section.Mode), p).Inc()
	if len(section.Projects) == 0 {
		o11y.EmptyProjectResults.Inc()
	}
}
