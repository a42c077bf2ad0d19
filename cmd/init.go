package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/profile"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a profile and config with an interactive wizard",
	Long: `Runs an interactive wizard that asks for your details and a template, then
writes profile.yml and .folio.yml. With --sample, writes a filled-in demo
profile instead so you can try the templates right away.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath, _ := cmd.Flags().GetString("profile")
		sample, _ := cmd.Flags().GetBool("sample")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			if _, err := os.Stat(profilePath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", profilePath)
			}
		}

		if !sample {
			_, err := config.RunWizard(cfgFile, profilePath)
			return err
		}

		p := profile.Sample()
		if err := p.Save(profilePath); err != nil {
			return err
		}
		fmt.Printf("Sample profile saved to %s\n", profilePath)

		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			cfg := config.DefaultConfig()
			cfg.Profile = profilePath
			if err := cfg.Save(cfgFile); err != nil {
				return err
			}
			fmt.Printf("Configuration saved to %s\n", cfgFile)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("profile", config.DefaultProfilePath, "where to write the profile")
	initCmd.Flags().Bool("sample", false, "write the demo profile instead of running the wizard")
	initCmd.Flags().Bool("force", false, "overwrite an existing profile")
	rootCmd.AddCommand(initCmd)
}
