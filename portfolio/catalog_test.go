package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRejectsInvalidProjects(t *testing.T) {
	tests := []struct {
		name     string
		projects []Project
		details  map[string]Details
		want     error
	}{
		{
			name:     "empty id",
			projects: []Project{company("", "Acme", CategoryMobile)},
			want:     ErrEmptyID,
		},
		{
			name: "duplicate id",
			projects: []Project{
				company("erp", "Acme", CategoryMobile),
				personal("erp", CategoryMobile),
			},
			want: ErrDuplicateID,
		},
		{
			name:     "unknown type",
			projects: []Project{{ID: "x", Type: "Freelance", Category: CategoryMobile}},
			want:     ErrInvalidType,
		},
		{
			name:     "unknown category",
			projects: []Project{{ID: "x", Type: TypeCompany, Category: "Gaming"}},
			want:     ErrInvalidCategory,
		},
		{
			name:     "company named like the All filter",
			projects: []Project{company("erp", All, CategoryMobile)},
			want:     ErrReservedCompany,
		},
		{
			name:     "personal project under the All company",
			projects: []Project{{ID: "x", Type: TypePersonal, Company: All, Category: CategoryMobile}},
			want:     ErrReservedCompany,
		},
		{
			name:     "details for a missing project",
			projects: []Project{company("erp", "Acme", CategoryMobile)},
			details:  map[string]Details{"pda": {}},
			want:     ErrUnknownDetailsID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.projects, tt.details)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog([]Project{
		company("erp", "Acme", CategoryArchitecture),
		personal("notes", CategoryArchitecture),
	}, map[string]Details{
		"notes": {Sections: []Section{{Heading: "Offline first"}}},
	})
	require.NoError(t, err)

	p, ok := c.Lookup("notes")
	require.True(t, ok)
	assert.Equal(t, TypePersonal, p.Type)
	assert.Equal(t, "/p/public/projects/notes", p.URL())

	_, ok = c.Lookup("missing")
	assert.False(t, ok)

	d, ok := c.Details("notes")
	require.True(t, ok)
	assert.Equal(t, "Offline first", d.Sections[0].Heading)

	_, ok = c.Details("erp")
	assert.False(t, ok)
}

func TestCatalogIsNotAliased(t *testing.T) {
	c, err := NewCatalog([]Project{company("erp", "Acme", CategoryArchitecture)}, nil)
	require.NoError(t, err)

	projects := c.Projects()
	projects[0].ID = "changed"
	opts := c.Options()
	opts.Companies[0] = "changed"

	p, ok := c.Lookup("erp")
	require.True(t, ok)
	assert.Equal(t, "erp", p.ID)
	assert.Equal(t, All, c.Options().Companies[0])
}

func TestCatalogCopiesNestedSlices(t *testing.T) {
	input := company("erp", "Acme", CategoryArchitecture)
	input.Tech = []string{"Go", "Postgres"}
	input.Metrics = []Metric{{Label: "Latency", Value: "20ms"}}
	c, err := NewCatalog([]Project{input}, map[string]Details{
		"erp": {Sections: []Section{{Heading: "Design", Bullets: []string{"queues"}}}},
	})
	require.NoError(t, err)

	input.Tech[0] = "changed"

	projects := c.Projects()
	projects[0].Tech[1] = "changed"
	projects[0].Metrics[0].Value = "changed"

	p, ok := c.Lookup("erp")
	require.True(t, ok)
	p.Tech[0] = "changed"

	visible := NewViewModel(c, DefaultViewState(), Options{}).VisibleProjects()
	require.Len(t, visible, 1)
	visible[0].Tech[0] = "changed"

	d, ok := c.Details("erp")
	require.True(t, ok)
	d.Sections[0].Bullets[0] = "changed"

	p, ok = c.Lookup("erp")
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Postgres"}, p.Tech)
	assert.Equal(t, []Metric{{Label: "Latency", Value: "20ms"}}, p.Metrics)
	d, _ = c.Details("erp")
	assert.Equal(t, []string{"queues"}, d.Sections[0].Bullets)
}

func TestCatalogCountByType(t *testing.T) {
	c := scenarioCatalog(t)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 3, c.CountByType(TypeCompany))
	assert.Equal(t, 2, c.CountByType(TypePersonal))
}
