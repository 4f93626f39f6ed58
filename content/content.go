package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ip812/portfolio/portfolio"
)

const (
	SiteFile     = "site.yaml"
	ProjectsFile = "projects.yaml"
	DetailsFile  = "details.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

var ErrInvalidContent = errors.New("invalid content")

type Content struct {
	Site    Site
	Catalog *portfolio.Catalog
}

// Embedded returns the content compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

func LoadEmbedded() (*Content, error) {
	return Load(Embedded())
}

// Load reads and validates the three content files of fsys. details.yaml
// is optional.
func Load(fsys fs.FS) (*Content, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	var site Site
	if err := decodeFile(fsys, SiteFile, &site, false); err != nil {
		return nil, err
	}
	if err := validate.Struct(site); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, SiteFile, err)
	}

	var projects projectsFile
	if err := decodeFile(fsys, ProjectsFile, &projects, false); err != nil {
		return nil, err
	}
	if err := validate.Struct(projects); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, ProjectsFile, err)
	}

	var details detailsFile
	if err := decodeFile(fsys, DetailsFile, &details, true); err != nil {
		return nil, err
	}
	if err := validate.Struct(details); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, DetailsFile, err)
	}

	records := make([]portfolio.Project, 0, len(projects.Projects))
	for _, e := range projects.Projects {
		records = append(records, e.project())
	}
	catalog, err := portfolio.NewCatalog(records, details.details())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	return &Content{Site: site, Catalog: catalog}, nil
}

func decodeFile(fsys fs.FS, name string, v any, optional bool) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidContent, name, err)
	}
	return nil
}
