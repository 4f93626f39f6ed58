package content

import "github.com/ip812/portfolio/portfolio"

type projectEntry struct {
	ID              string        `yaml:"id" validate:"required"`
	Title           string        `yaml:"title" validate:"required"`
	Description     string        `yaml:"description" validate:"required"`
	FullDescription string        `yaml:"full_description"`
	Role            string        `yaml:"role"`
	Period          string        `yaml:"period"`
	Tech            []string      `yaml:"tech" validate:"dive,required"`
	Company         string        `yaml:"company" validate:"required"`
	Type            string        `yaml:"type" validate:"required,oneof=Company Personal"`
	Category        string        `yaml:"category" validate:"required"`
	Metrics         []metricEntry `yaml:"metrics" validate:"dive"`
	Icon            string        `yaml:"icon"`
	Color           string        `yaml:"color"`
	Link            string        `yaml:"link" validate:"omitempty,url"`
}

type metricEntry struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

type projectsFile struct {
	Projects []projectEntry `yaml:"projects" validate:"dive"`
}

type sectionEntry struct {
	Heading string   `yaml:"heading" validate:"required"`
	Body    string   `yaml:"body"`
	Bullets []string `yaml:"bullets"`
	Code    string   `yaml:"code"`
}

type detailsFile struct {
	Details map[string][]sectionEntry `yaml:"details" validate:"dive,dive"`
}

func (e projectEntry) project() portfolio.Project {
	metrics := make([]portfolio.Metric, 0, len(e.Metrics))
	for _, m := range e.Metrics {
		metrics = append(metrics, portfolio.Metric{Label: m.Label, Value: m.Value})
	}
	return portfolio.Project{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		FullDescription: e.FullDescription,
		Role:            e.Role,
		Period:          e.Period,
		Tech:            e.Tech,
		Company:         e.Company,
		Type:            portfolio.ProjectType(e.Type),
		Category:        portfolio.Category(e.Category),
		Metrics:         metrics,
		Icon:            e.Icon,
		Color:           e.Color,
		Link:            e.Link,
	}
}

func (f detailsFile) details() map[string]portfolio.Details {
	out := make(map[string]portfolio.Details, len(f.Details))
	for id, sections := range f.Details {
		d := portfolio.Details{Sections: make([]portfolio.Section, 0, len(sections))}
		for _, s := range sections {
			d.Sections = append(d.Sections, portfolio.Section{
				Heading: s.Heading,
				Body:    s.Body,
				Bullets: s.Bullets,
				Code:    s.Code,
			})
		}
		out[id] = d
	}
	return out
}
