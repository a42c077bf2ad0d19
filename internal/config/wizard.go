package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

// WizardResult is what the interactive setup produces.
type WizardResult struct {
	Config  *Config
	Profile *profile.Profile
}

// RunWizard asks for the basic profile fields and a template, then saves
// the profile to profilePath and the config to configPath.
func RunWizard(configPath, profilePath string) (*WizardResult, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio.")
	fmt.Println()

	p := &profile.Profile{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Full name", &p.Name},
		{"Professional title", &p.Title},
		{"About you (one paragraph)", &p.About},
		{"Email", &p.Email},
		{"Location", &p.Location},
		{"GitHub URL", &p.GitHub},
		{"LinkedIn URL", &p.LinkedIn},
	}
	for _, f := range fields {
		prompt := promptui.Prompt{Label: f.label}
		v, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(f.label), err)
		}
		*f.dst = strings.TrimSpace(v)
	}

	skillsPrompt := promptui.Prompt{Label: "Skills (comma-separated)"}
	skillsStr, err := skillsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	p.Skills = splitAndTrim(skillsStr)

	if err := profile.Validate(p); err != nil {
		return nil, err
	}

	catalog := portfolio.Catalog()
	items := make([]string, len(catalog))
	for i, t := range catalog {
		items[i] = fmt.Sprintf("%-12s %s", t.ID, t.Description)
	}
	templatePrompt := promptui.Select{
		Label: "Select a template",
		Items: items,
	}
	idx, _, err := templatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template selection: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: "site",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Template = string(catalog[idx].ID)
	cfg.Profile = profilePath
	cfg.OutputDir = strings.TrimSpace(outputDir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := p.Save(profilePath); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nProfile saved to %s\n", profilePath)
	fmt.Printf("Configuration saved to %s\n", configPath)
	return &WizardResult{Config: cfg, Profile: p}, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
