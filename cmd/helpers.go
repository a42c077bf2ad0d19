package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newGenerator builds the generator selected by the config.
func newGenerator(cfg *config.Config) (*portfolio.Generator, error) {
	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	return portfolio.NewGenerator(opts.Escaping, opts.Markdown), nil
}

// loadProfile reads a profile and runs the precondition checks on it.
func loadProfile(path string) (*profile.Profile, error) {
	p, err := profile.LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w\nRun `folio init` to create a profile", err)
		}
		return nil, err
	}
	if err := profile.Validate(p); err != nil {
		return nil, fmt.Errorf("checking profile %s: %w", path, err)
	}
	return p, nil
}

// checkTemplate rejects ids outside the catalog. The engine itself falls
// back to the default theme; the CLI reports typos instead.
func checkTemplate(id string) (portfolio.TemplateID, error) {
	t, ok := portfolio.ParseTemplateID(id)
	if !ok {
		return "", fmt.Errorf("unknown template %q (run `folio templates` to list them)", id)
	}
	return t, nil
}

// openBrowser opens the specified URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open browser: %v\n", err)
	}
}
