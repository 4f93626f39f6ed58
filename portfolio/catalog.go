package portfolio

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID          = errors.New("project id is empty")
	ErrDuplicateID      = errors.New("duplicate project id")
	ErrInvalidType      = errors.New("invalid project type")
	ErrInvalidCategory  = errors.New("invalid project category")
	ErrUnknownDetailsID = errors.New("details reference an unknown project")
	ErrReservedCompany  = errors.New("company name is reserved for the All filter")
)

// Catalog is the fixed, ordered list of projects together with the
// filter options derived from it. It is never mutated after NewCatalog;
// a content change builds a new Catalog.
type Catalog struct {
	projects []Project
	byID     map[string]int
	details  map[string]Details
	options  FilterOptions
}

func NewCatalog(projects []Project, details map[string]Details) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
		details:  make(map[string]Details, len(details)),
	}

	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project #%d: %w", i, ErrEmptyID)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		if !p.Type.Valid() {
			return nil, fmt.Errorf("project %q: %w: %q", p.ID, ErrInvalidType, p.Type)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("project %q: %w: %q", p.ID, ErrInvalidCategory, p.Category)
		}
		if p.Company == All {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrReservedCompany)
		}
		c.byID[p.ID] = len(c.projects)
		c.projects = append(c.projects, p.clone())
	}

	for id, d := range details {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDetailsID, id)
		}
		c.details[id] = d.clone()
	}

	c.options = DeriveFilterOptions(c.projects)
	return c, nil
}

// Projects returns a deep copy of the catalog in insertion order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = p.clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.projects)
}

func (c *Catalog) Lookup(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i].clone(), true
}

func (c *Catalog) Details(id string) (Details, bool) {
	d, ok := c.details[id]
	return d.clone(), ok
}

func (c *Catalog) Options() FilterOptions {
	return c.options.clone()
}

func (c *Catalog) CountByType(t ProjectType) int {
	n := 0
	for _, p := range c.projects {
		if p.Type == t {
			n++
		}
	}
	return n
}
