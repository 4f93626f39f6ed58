package portfolio

import (
	"slices"
	"strings"
)

// All is the filter value that puts no constraint on its dimension.
const All = "All"

type ProjectType string

const (
	TypeCompany  ProjectType = "Company"
	TypePersonal ProjectType = "Personal"
)

func (t ProjectType) Valid() bool {
	return t == TypeCompany || t == TypePersonal
}

// Tab is the lowercase form used in the tab query parameter.
func (t ProjectType) Tab() string {
	return strings.ToLower(string(t))
}

type Category string

const (
	CategoryArchitecture   Category = "Architecture"
	CategoryPerformance    Category = "Performance"
	CategoryOpenSource     Category = "Open Source"
	CategoryMobile         Category = "Mobile"
	CategoryVisualization  Category = "Visualization"
	CategoryInfrastructure Category = "Infrastructure"
)

var Categories = []Category{
	CategoryArchitecture,
	CategoryPerformance,
	CategoryOpenSource,
	CategoryMobile,
	CategoryVisualization,
	CategoryInfrastructure,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Metric struct {
	Label string
	Value string
}

type Project struct {
	ID              string
	Title           string
	Description     string
	FullDescription string
	Role            string
	Period          string
	Tech            []string
	Company         string
	Type            ProjectType
	Category        Category
	Metrics         []Metric
	Icon            string
	Color           string
	Link            string
}

func (p Project) clone() Project {
	p.Tech = slices.Clone(p.Tech)
	p.Metrics = slices.Clone(p.Metrics)
	return p
}

// URL is the path of the project's details page.
func (p Project) URL() string {
	return "/p/public/projects/" + p.ID
}

// Details is the technical write-up rendered on a project's page.
type Details struct {
	Sections []Section
}

func (d Details) clone() Details {
	if d.Sections == nil {
		return d
	}
	sections := make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		s.Bullets = slices.Clone(s.Bullets)
		sections[i] = s
	}
	return Details{Sections: sections}
}

type Section struct {
	Heading string
	Body    string
	Bullets []string
	Code    string
}
