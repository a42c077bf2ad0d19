package profile

// Profile is the personal data used to populate a generated site.
// Empty strings mean "absent" for every optional field.
type Profile struct {
	Name     string `json:"name" yaml:"name" validate:"max=200"`
	Title    string `json:"title" yaml:"title" validate:"max=200"`
	About    string `json:"about" yaml:"about" validate:"max=10000"`
	Email    string `json:"email" yaml:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" yaml:"phone" validate:"max=50"`
	Location string `json:"location" yaml:"location" validate:"max=200"`
	Website  string `json:"website" yaml:"website" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin" yaml:"linkedin" validate:"omitempty,url"`
	GitHub   string `json:"github" yaml:"github" validate:"omitempty,url"`
	Twitter  string `json:"twitter" yaml:"twitter" validate:"omitempty,url"`

	Skills      []string     `json:"skills" yaml:"skills" validate:"dive,max=100"`
	Experiences []Experience `json:"experiences" yaml:"experiences" validate:"dive"`
	Education   []Education  `json:"education" yaml:"education" validate:"dive"`
	Projects    []Project    `json:"projects" yaml:"projects" validate:"dive"`
}

// Experience is one position held. EndDate may be the literal "Present".
type Experience struct {
	Company     string `json:"company" yaml:"company" validate:"max=200"`
	Position    string `json:"position" yaml:"position" validate:"max=200"`
	StartDate   string `json:"startDate" yaml:"startDate" validate:"max=20"`
	EndDate     string `json:"endDate" yaml:"endDate" validate:"max=20"`
	Description string `json:"description" yaml:"description" validate:"max=5000"`
}

// Education is one degree or course of study.
type Education struct {
	Institution string `json:"institution" yaml:"institution" validate:"max=200"`
	Degree      string `json:"degree" yaml:"degree" validate:"max=200"`
	Field       string `json:"field" yaml:"field" validate:"max=200"`
	StartDate   string `json:"startDate" yaml:"startDate" validate:"max=20"`
	EndDate     string `json:"endDate" yaml:"endDate" validate:"max=20"`
}

// Project is a showcased piece of work.
type Project struct {
	Title        string   `json:"title" yaml:"title" validate:"max=200"`
	Description  string   `json:"description" yaml:"description" validate:"max=5000"`
	Technologies []string `json:"technologies" yaml:"technologies" validate:"dive,max=100"`
	Link         string   `json:"link" yaml:"link" validate:"omitempty,url"`
	Image        string   `json:"image" yaml:"image" validate:"omitempty,url"`
}
