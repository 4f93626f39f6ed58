package content

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip812/portfolio/portfolio"
)

const minimalSite = `
name: Test
description: A test site
url: https://example.com
hero:
  headline: Hello
`

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "Liora", c.Site.Name)
	assert.Equal(t, 16, c.Catalog.Len())
	assert.Equal(t, 10, c.Catalog.CountByType(portfolio.TypeCompany))
	assert.Equal(t, 6, c.Catalog.CountByType(portfolio.TypePersonal))

	opts := c.Catalog.Options()
	if diff := cmp.Diff([]string{"All", "Silergytest", "DingSheng", "GongBao", "KaiNai"}, opts.Companies); diff != "" {
		t.Fatalf("companies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"All", "Architecture", "Mobile", "Visualization", "Performance"}, opts.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}

	_, ok := c.Catalog.Details("silergy-erp")
	assert.True(t, ok)
}

func TestLoadWithoutDetails(t *testing.T) {
	fsys := fstest.MapFS{
		SiteFile: {Data: []byte(minimalSite)},
		ProjectsFile: {Data: []byte(`
projects:
  - id: erp
    title: ERP
    description: An ERP
    company: Acme
    type: Company
    category: Architecture
`)},
	}

	c, err := Load(fsys)
	require.NoError(t, err)

	p, ok := c.Catalog.Lookup("erp")
	require.True(t, ok)
	assert.Equal(t, portfolio.TypeCompany, p.Type)
	assert.Equal(t, portfolio.CategoryArchitecture, p.Category)
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		projects string
		details  string
	}{
		{
			name:     "unknown project type",
			site:     minimalSite,
			projects: "projects:\n  - {id: a, title: A, description: d, company: Acme, type: Freelance, category: Mobile}\n",
		},
		{
			name:     "unknown category",
			site:     minimalSite,
			projects: "projects:\n  - {id: a, title: A, description: d, company: Acme, type: Company, category: Gaming}\n",
		},
		{
			name: "duplicate id",
			site: minimalSite,
			projects: "projects:\n" +
				"  - {id: a, title: A, description: d, company: Acme, type: Company, category: Mobile}\n" +
				"  - {id: a, title: B, description: d, company: Acme, type: Company, category: Mobile}\n",
		},
		{
			name:     "missing title",
			site:     minimalSite,
			projects: "projects:\n  - {id: a, description: d, company: Acme, type: Company, category: Mobile}\n",
		},
		{
			name:     "unknown field",
			site:     minimalSite,
			projects: "projects:\n  - {id: a, title: A, description: d, company: Acme, type: Company, category: Mobile, stars: 5}\n",
		},
		{
			name:     "site without url",
			site:     "name: Test\ndescription: d\nhero:\n  headline: Hi\n",
			projects: "projects: []\n",
		},
		{
			name:     "details for unknown project",
			site:     minimalSite,
			projects: "projects: []\n",
			details:  "details:\n  ghost:\n    - heading: Boo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				SiteFile:     {Data: []byte(tt.site)},
				ProjectsFile: {Data: []byte(tt.projects)},
			}
			if tt.details != "" {
				fsys[DetailsFile] = &fstest.MapFile{Data: []byte(tt.details)}
			}

			_, err := Load(fsys)
			require.ErrorIs(t, err, ErrInvalidContent)
		})
	}
}

func TestLoadMissingProjectsFile(t *testing.T) {
	_, err := Load(fstest.MapFS{SiteFile: {Data: []byte(minimalSite)}})
	require.Error(t, err)
}

func TestStoreSwap(t *testing.T) {
	first, err := LoadEmbedded()
	require.NoError(t, err)
	store := NewStore(first)
	assert.Same(t, first, store.Get())

	second, err := LoadEmbedded()
	require.NoError(t, err)
	store.Swap(second)
	assert.Same(t, second, store.Get())
}
