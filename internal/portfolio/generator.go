// Package portfolio generates the markup, stylesheet and script of a
// personal website from a profile and a template id.
package portfolio

import (
	"fmt"
	"time"

	"github.com/ziadkadry99/folio/internal/profile"
)

// EscapeMode controls how profile text is interpolated into markup.
type EscapeMode string

const (
	// EscapeStrict escapes all profile text for its HTML context and treats
	// link fields as URLs, neutralising unsafe schemes.
	EscapeStrict EscapeMode = "strict"
	// EscapeLegacy interpolates profile text verbatim. Markup-significant
	// characters in the profile end up as live markup.
	EscapeLegacy EscapeMode = "legacy"
)

// ParseEscapeMode accepts "strict", "legacy", or "" (strict).
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch EscapeMode(s) {
	case "", EscapeStrict:
		return EscapeStrict, nil
	case EscapeLegacy:
		return EscapeLegacy, nil
	default:
		return "", fmt.Errorf("unknown escaping mode %q: must be strict or legacy", s)
	}
}

// Options tune a single generation.
type Options struct {
	// GeneratedAt supplies the footer copyright year. Generate substitutes
	// the current time when it is zero.
	GeneratedAt time.Time
	Escaping    EscapeMode
	// Markdown renders about text and descriptions as markdown.
	Markdown bool
}

// Artifact is the generated site: three independent text files.
type Artifact struct {
	Markup     string `json:"html"`
	Stylesheet string `json:"css"`
	Script     string `json:"js"`
}

// Generate renders the site for a profile and template id. Unknown template
// ids use the default theme. The profile is not validated; an error is
// returned only if rendering itself fails.
func Generate(p profile.Profile, templateID string, opts Options) (Artifact, error) {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	theme := ResolveTheme(templateID)

	markup, err := RenderMarkup(p, opts)
	if err != nil {
		return Artifact{}, fmt.Errorf("rendering markup: %w", err)
	}

	return Artifact{
		Markup:     markup,
		Stylesheet: RenderStyle(theme),
		Script:     RenderScript(),
	}, nil
}

// Generator renders sites with fixed options and a caller-supplied clock.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	Escaping EscapeMode
	Markdown bool
	Now      func() time.Time
}

// NewGenerator creates a Generator that reads the wall clock.
func NewGenerator(escaping EscapeMode, markdown bool) *Generator {
	return &Generator{
		Escaping: escaping,
		Markdown: markdown,
		Now:      time.Now,
	}
}

// Generate renders the site for p using the generator's options.
func (g *Generator) Generate(p profile.Profile, templateID string) (Artifact, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return Generate(p, templateID, Options{
		GeneratedAt: now(),
		Escaping:    g.Escaping,
		Markdown:    g.Markdown,
	})
}
