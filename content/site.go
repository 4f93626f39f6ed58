package content

// Site is everything on the landing page that is not a project.
type Site struct {
	Name        string       `yaml:"name" validate:"required"`
	FullName    string       `yaml:"full_name"`
	Description string       `yaml:"description" validate:"required"`
	URL         string       `yaml:"url" validate:"required,url"`
	Links       Links        `yaml:"links"`
	Nav         []NavItem    `yaml:"nav" validate:"dive"`
	Hero        Hero         `yaml:"hero"`
	About       About        `yaml:"about"`
	Stats       []Stat       `yaml:"stats" validate:"dive"`
	Experiences []Experience `yaml:"experiences" validate:"dive"`
	Contact     Contact      `yaml:"contact"`
}

type Links struct {
	GitHub string `yaml:"github" validate:"omitempty,url"`
	Mail   string `yaml:"mail" validate:"omitempty,email"`
}

type NavItem struct {
	Title string `yaml:"title" validate:"required"`
	Href  string `yaml:"href" validate:"required"`
}

type Hero struct {
	Status   string   `yaml:"status"`
	Headline string   `yaml:"headline" validate:"required"`
	Role     string   `yaml:"role"`
	Summary  string   `yaml:"summary"`
	Stack    []string `yaml:"stack"`
}

type About struct {
	Intro      string      `yaml:"intro"`
	Highlights []Highlight `yaml:"highlights" validate:"dive"`
}

type Highlight struct {
	Title       string `yaml:"title" validate:"required"`
	Value       string `yaml:"value" validate:"required"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

type Stat struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Unit  string `yaml:"unit"`
}

type Experience struct {
	Company      string   `yaml:"company" validate:"required"`
	Role         string   `yaml:"role" validate:"required"`
	Period       string   `yaml:"period" validate:"required"`
	Achievements []string `yaml:"achievements"`
	Tech         []string `yaml:"tech"`
	Highlight    bool     `yaml:"highlight"`
}

type Contact struct {
	Headline string        `yaml:"headline"`
	Pitch    string        `yaml:"pitch"`
	Items    []ContactItem `yaml:"items" validate:"dive"`
}

type ContactItem struct {
	Label string `yaml:"label" validate:"required"`
	Value string `yaml:"value" validate:"required"`
	Href  string `yaml:"href"`
}
