package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portfolio/portfolio-server/internal/util"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	if args[0] == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := util.HashPassword(args[0])
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
