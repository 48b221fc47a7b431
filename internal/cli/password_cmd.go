package cli

import (
	"fmt"

	"github.com/alexanderramin/cptrack/internal/access"
	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	var useBcrypt bool

	cmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a hash for edit.password_hash in config.toml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !useBcrypt {
				fmt.Fprintln(cmd.OutOrStdout(), access.HashSHA256(args[0]))
				return nil
			}
			hash, err := access.HashBcrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useBcrypt, "bcrypt", false, "Use bcrypt instead of SHA-256")

	return cmd
}
