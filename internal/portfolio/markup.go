package portfolio

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/folio/internal/profile"
)

var (
	escapedMarkup = htmltemplate.Must(htmltemplate.New("markup").Parse(markupTemplate))
	legacyMarkup  = texttemplate.Must(texttemplate.New("markup").Parse(markupTemplate))

	// Raw HTML inside markdown is dropped and dangerous link schemes are
	// filtered, since html.WithUnsafe is not set.
	richText = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// markupView is the read-only data handed to the markup template.
type markupView struct {
	Name     string
	Title    string
	About    any
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string

	Skills      []string
	Experiences []experienceView
	Education   []educationView
	Projects    []projectView

	RichText bool
	Year     int
}

type experienceView struct {
	Position    string
	Company     string
	Start       string
	End         string
	Description any
}

type educationView struct {
	Degree      string
	Field       string
	Institution string
	Start       string
	End         string
}

type projectView struct {
	Title        string
	Description  any
	Technologies []string
	Link         string
	Image        string
}

// RenderMarkup builds the page markup for a profile. The output depends on
// the profile and on opts only; the footer year is taken from
// opts.GeneratedAt as given.
func RenderMarkup(p profile.Profile, opts Options) (string, error) {
	view, err := newMarkupView(p, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	switch opts.Escaping {
	case EscapeLegacy:
		err = legacyMarkup.Execute(&buf, view)
	default:
		err = escapedMarkup.Execute(&buf, view)
	}
	if err != nil {
		return "", fmt.Errorf("executing markup template: %w", err)
	}
	return buf.String(), nil
}

func newMarkupView(p profile.Profile, opts Options) (*markupView, error) {
	about, err := renderText(p.About, opts.Markdown)
	if err != nil {
		return nil, err
	}

	view := &markupView{
		Name:     p.Name,
		Title:    p.Title,
		About:    about,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		LinkedIn: p.LinkedIn,
		GitHub:   p.GitHub,
		Skills:   p.Skills,
		RichText: opts.Markdown,
		Year:     opts.GeneratedAt.Year(),
	}

	for _, exp := range p.Experiences {
		desc, err := renderText(exp.Description, opts.Markdown)
		if err != nil {
			return nil, err
		}
		view.Experiences = append(view.Experiences, experienceView{
			Position:    exp.Position,
			Company:     exp.Company,
			Start:       FormatDate(exp.StartDate),
			End:         endDate(exp.EndDate),
			Description: desc,
		})
	}

	for _, edu := range p.Education {
		view.Education = append(view.Education, educationView{
			Degree:      edu.Degree,
			Field:       edu.Field,
			Institution: edu.Institution,
			Start:       FormatDate(edu.StartDate),
			End:         endDate(edu.EndDate),
		})
	}

	for _, proj := range p.Projects {
		desc, err := renderText(proj.Description, opts.Markdown)
		if err != nil {
			return nil, err
		}
		view.Projects = append(view.Projects, projectView{
			Title:        proj.Title,
			Description:  desc,
			Technologies: proj.Technologies,
			Link:         proj.Link,
			Image:        proj.Image,
		})
	}

	return view, nil
}

// endDate treats a missing end date as an ongoing entry.
func endDate(value string) string {
	if value == "" {
		return "Present"
	}
	return FormatDate(value)
}

// renderText returns s unchanged, or as trusted HTML converted from
// markdown when markdown is enabled.
func renderText(s string, markdown bool) (any, error) {
	if !markdown || s == "" {
		return s, nil
	}
	var buf bytes.Buffer
	if err := richText.Convert([]byte(s), &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return htmltemplate.HTML(buf.String()), nil
}
