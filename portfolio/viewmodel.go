package portfolio

type Options struct {
	// ResetFiltersOnTabSwitch clears both filters whenever the active tab
	// changes. By default filters survive a trip to the Personal tab.
	ResetFiltersOnTabSwitch bool
}

// ViewModel owns one visitor's ViewState over a catalog. Every mutation
// leaves the state valid for that catalog.
type ViewModel struct {
	catalog *Catalog
	opts    Options
	state   ViewState
}

// NewViewModel starts from state, clamping anything the catalog does not
// offer: an unknown tab becomes Company and unknown filters become All.
func NewViewModel(catalog *Catalog, state ViewState, opts Options) *ViewModel {
	vm := &ViewModel{
		catalog: catalog,
		opts:    opts,
		state:   DefaultViewState(),
	}
	vm.state.ActiveTab = clampTab(state.ActiveTab)
	vm.SetCompanyFilter(state.CompanyFilter)
	vm.SetCategoryFilter(state.CategoryFilter)
	return vm
}

func (vm *ViewModel) State() ViewState {
	return vm.state
}

func (vm *ViewModel) Mode() Mode {
	return vm.state.Mode()
}

func (vm *ViewModel) Options() FilterOptions {
	return vm.catalog.Options()
}

func (vm *ViewModel) Catalog() *Catalog {
	return vm.catalog
}

func (vm *ViewModel) SelectTab(tab ProjectType) {
	tab = clampTab(tab)
	if tab != vm.state.ActiveTab && vm.opts.ResetFiltersOnTabSwitch {
		vm.ResetFilters()
	}
	vm.state.ActiveTab = tab
}

func (vm *ViewModel) SetCompanyFilter(v string) {
	if !vm.catalog.options.HasCompany(v) {
		v = All
	}
	vm.state.CompanyFilter = v
}

func (vm *ViewModel) SetCategoryFilter(v string) {
	if !vm.catalog.options.HasCategory(v) {
		v = All
	}
	vm.state.CategoryFilter = v
}

func (vm *ViewModel) ResetFilters() {
	vm.state.CompanyFilter = All
	vm.state.CategoryFilter = All
}

func (vm *ViewModel) VisibleProjects() []Project {
	return ComputeVisibleProjects(vm.catalog.projects, vm.state)
}

// Clone returns an independent view model over the same catalog, used to
// preview the state an action would lead to.
func (vm *ViewModel) Clone() *ViewModel {
	c := *vm
	return &c
}

func clampTab(t ProjectType) ProjectType {
	if t == TypePersonal {
		return TypePersonal
	}
	return TypeCompany
}
