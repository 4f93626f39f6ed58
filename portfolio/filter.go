package portfolio

import "slices"

type FilterOptions struct {
	Companies  []string
	Categories []string
}

func (o FilterOptions) HasCompany(v string) bool {
	return slices.Contains(o.Companies, v)
}

func (o FilterOptions) HasCategory(v string) bool {
	return slices.Contains(o.Categories, v)
}

func (o FilterOptions) clone() FilterOptions {
	return FilterOptions{
		Companies:  slices.Clone(o.Companies),
		Categories: slices.Clone(o.Categories),
	}
}

// DeriveFilterOptions lists All followed by every distinct company and
// category of the Company projects, in the order they first appear.
func DeriveFilterOptions(projects []Project) FilterOptions {
	opts := FilterOptions{
		Companies:  []string{All},
		Categories: []string{All},
	}
	seenCompanies := map[string]struct{}{All: {}}
	seenCategories := map[string]struct{}{All: {}}

	for _, p := range projects {
		if p.Type != TypeCompany {
			continue
		}
		if _, ok := seenCompanies[p.Company]; !ok {
			seenCompanies[p.Company] = struct{}{}
			opts.Companies = append(opts.Companies, p.Company)
		}
		category := string(p.Category)
		if _, ok := seenCategories[category]; !ok {
			seenCategories[category] = struct{}{}
			opts.Categories = append(opts.Categories, category)
		}
	}

	return opts
}

// ComputeVisibleProjects returns the projects of the active tab that match
// the state's filters, keeping catalog order. Filters only apply to the
// Company tab.
func ComputeVisibleProjects(projects []Project, state ViewState) []Project {
	visible := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Type != state.ActiveTab {
			continue
		}
		if state.ActiveTab == TypeCompany {
			if state.CompanyFilter != All && p.Company != state.CompanyFilter {
				continue
			}
			if state.CategoryFilter != All && string(p.Category) != state.CategoryFilter {
				continue
			}
		}
		visible = append(visible, p.clone())
	}
	return visible
}
