package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/server"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve a live preview of the site and the generation API",
	Long: `Starts the preview server. The configured profile is rendered at / and the
page reloads whenever the profile file changes. The generated sources are
shown with syntax highlighting at /source/html, /source/css and /source/js,
and the JSON API under /api renders any profile sent to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyGenerateFlags(cmd, cfg); err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("open") {
			cfg.Server.Open, _ = cmd.Flags().GetBool("open")
		}
		if _, err := checkTemplate(cfg.Template); err != nil {
			return err
		}

		profilePath := cfg.Profile
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: %s not found, previewing the sample profile\n", profilePath)
			profilePath = ""
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:        cfg.Server.Port,
			AllowAll:    cfg.Server.AllowAll,
			ProfilePath: profilePath,
			Template:    cfg.Template,
			Watch:       profilePath != "",
		}, gen)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down preview...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d/", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "folio preview v%s at %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Template: %s\n", cfg.Template)
		if profilePath != "" {
			fmt.Fprintf(os.Stderr, "  Watching: %s\n", profilePath)
		}
		if cfg.Server.Open {
			go openBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("port", 8080, "port to listen on (overrides config)")
	previewCmd.Flags().Bool("open", false, "open the preview in a browser")
	previewCmd.Flags().String("profile", "", "profile file (overrides config)")
	previewCmd.Flags().StringP("template", "t", "", "template id (overrides config)")
	previewCmd.Flags().String("escaping", "", "profile text escaping: strict or legacy (overrides config)")
	previewCmd.Flags().Bool("markdown", false, "render about text and descriptions as markdown")
	rootCmd.AddCommand(previewCmd)
}
