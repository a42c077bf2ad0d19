package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/profile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [profile]",
	Short: "Check a profile for ill-typed or malformed fields",
	Long: `Checks the profile against the profile schema and the field rules (email
address, absolute URLs, length limits). Every problem is reported at once.
Without an argument the configured profile is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.Profile
		}

		p, err := profile.LoadFile(path)
		if err == nil {
			err = profile.Validate(p)
		}

		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			fmt.Print(ve.Error())
			return fmt.Errorf("%s has %d problem(s)", path, len(ve.Errors))
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s is valid\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
