package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/portfolio"
)

func testCatalog(t *testing.T) *portfolio.Catalog {
	t.Helper()
	c, err := portfolio.NewCatalog([]portfolio.Project{
		{ID: "erp", Type: portfolio.TypeCompany, Company: "Acme", Category: portfolio.CategoryArchitecture},
		{ID: "bi", Type: portfolio.TypeCompany, Company: "Beta", Category: portfolio.CategoryVisualization},
		{ID: "blog", Type: portfolio.TypePersonal, Company: "Personal", Category: portfolio.CategoryInfrastructure},
	}, nil)
	require.NoError(t, err)
	return c
}

func TestProjectsSectionLinks(t *testing.T) {
	vm := portfolio.NewViewModel(testCatalog(t), portfolio.ViewState{
		ActiveTab:      portfolio.TypeCompany,
		CompanyFilter:  "Acme",
		CategoryFilter: portfolio.All,
	}, portfolio.Options{})

	section := projectsSection(vm)

	require.Len(t, section.Tabs, 2)
	assert.True(t, section.Tabs[0].Active)
	assert.Equal(t, 2, section.Tabs[0].Count)
	assert.Equal(t, 1, section.Tabs[1].Count)
	assert.Equal(t, "/p/public/projects?company=Acme&tab=personal", section.Tabs[1].HXGet)
	assert.Equal(t, "/?company=Acme&tab=personal#projects", section.Tabs[1].Href)

	require.Len(t, section.Companies, 3)
	assert.Equal(t, "All", section.Companies[0].Label)
	assert.Equal(t, "/p/public/projects?tab=company", section.Companies[0].HXGet)
	assert.True(t, section.Companies[1].Active)
	assert.Equal(t, "/p/public/projects?company=Beta&tab=company", section.Companies[2].HXGet)

	assert.Equal(t, "/p/public/projects?tab=company", section.Reset.HXGet)
	assert.True(t, section.ShowFilters)
	assert.True(t, section.ShowReset)
	require.Len(t, section.Projects, 1)
	assert.Equal(t, "erp", section.Projects[0].ID)
}

func TestProjectsSectionLeavesViewModelUntouched(t *testing.T) {
	vm := portfolio.NewViewModel(testCatalog(t), portfolio.DefaultViewState(), portfolio.Options{})

	section := projectsSection(vm)

	assert.Equal(t, portfolio.DefaultViewState(), vm.State())
	assert.False(t, section.ShowReset)
}

func TestProjectsSectionPersonalTabHidesFilters(t *testing.T) {
	vm := portfolio.NewViewModel(testCatalog(t), portfolio.ViewState{
		ActiveTab:      portfolio.TypePersonal,
		CompanyFilter:  "Beta",
		CategoryFilter: portfolio.All,
	}, portfolio.Options{})

	section := projectsSection(vm)

	assert.False(t, section.ShowFilters)
	assert.False(t, section.ShowReset)
	assert.Equal(t, "/p/public/projects?company=Beta&tab=company", section.Tabs[0].HXGet)
}

func TestBackURL(t *testing.T) {
	assert.Equal(t, "/?tab=personal#projects", backURL(portfolio.Project{Type: portfolio.TypePersonal}))
	assert.Equal(t, "/?tab=company#projects", backURL(portfolio.Project{Type: portfolio.TypeCompany}))
}
