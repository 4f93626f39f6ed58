package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ip812/portfolio/content"
	"github.com/ip812/portfolio/o11y"
	"github.com/ip812/portfolio/portfolio"
	"github.com/ip812/portfolio/status"
	"github.com/ip812/portfolio/templates/views"
	"github.com/ip812/portfolio/utils"
)

type projectsQuery struct {
	Tab      string `form:"tab"`
	Company  string `form:"company"`
	Category string `form:"category"`
}

func (hnd *Handler) viewModel(r *http.Request, c *content.Content) *portfolio.ViewModel {
	var q projectsQuery
	if err := hnd.formDecoder.Decode(&q, r.URL.Query()); err != nil {
		hnd.log.Warn("failed to decode projects query %q: %v", r.URL.RawQuery, err)
		q = projectsQuery{}
	}

	return portfolio.NewViewModel(
		c.Catalog,
		portfolio.ParseViewState(q.Tab, q.Company, q.Category),
		portfolio.Options{ResetFiltersOnTabSwitch: hnd.config.Portfolio.ResetFiltersOnTabSwitch},
	)
}

func (hnd *Handler) LandingPageView(w http.ResponseWriter, r *http.Request) {
	c := hnd.content.Get()
	vm := hnd.viewModel(r, c)
	section := projectsSection(vm)
	recordProjectsView(section, false)
	o11y.PageRenders.WithLabelValues("landing").Inc()

	utils.Render(w, r, views.LandingPage(views.LandingPageData{
		Site:     c.Site,
		Projects: section,
	}))
}

// ProjectsView answers htmx tab and filter clicks with the projects
// fragment and rewrites the address bar to the shareable tab URL.
// Plain requests get the whole landing page.
func (hnd *Handler) ProjectsView(w http.ResponseWriter, r *http.Request) {
	if !utils.IsHTMXRequest(r) {
		hnd.LandingPageView(w, r)
		return
	}

	vm := hnd.viewModel(r, hnd.content.Get())
	section := projectsSection(vm)
	recordProjectsView(section, true)

	utils.ReplaceURL(w, vm.State().ShareURL())
	utils.Render(w, r, views.ProjectsView(section))
}

func (hnd *Handler) ProjectDetailsView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c := hnd.content.Get()

	project, ok := c.Catalog.Lookup(id)
	if !ok {
		o11y.PageRenders.WithLabelValues("not_found").Inc()
		if utils.IsHTMXRequest(r) {
			toast := status.ErrorNotFound(status.ErrProjectNotFound)
			utils.RenderWithStatus(w, r, toast.StatusCode, toast)
			return
		}
		utils.RenderWithStatus(w, r, http.StatusNotFound, views.NotFound(c.Site))
		return
	}

	details, _ := c.Catalog.Details(id)
	o11y.PageRenders.WithLabelValues("project").Inc()
	utils.Render(w, r, views.ProjectDetails(views.ProjectDetailsData{
		Site:    c.Site,
		Project: project,
		Details: details,
		BackURL: backURL(project),
	}))
}

// ProjectRedirect keeps the old /projects/{id} links working.
func (hnd *Handler) ProjectRedirect(w http.ResponseWriter, r *http.Request) {
	project := portfolio.Project{ID: chi.URLParam(r, "id")}
	http.Redirect(w, r, project.URL(), http.StatusMovedPermanently)
}

func backURL(p portfolio.Project) string {
	return portfolio.ViewState{ActiveTab: p.Type}.ShareURL() + "#projects"
}
