package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portfolio/portfolio-server/internal/config"
	"github.com/portfolio/portfolio-server/internal/mail"
	"github.com/portfolio/portfolio-server/internal/repository"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the mail transport and read the contact store once",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	failed := 0
	report := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %-14s %v\n", name, err)
			return
		}
		fmt.Fprintf(out, "OK    %s\n", name)
	}

	fmt.Fprintf(out, "admin password: %s\n", configured(cfg.AdminConfigured()))

	mailer, err := mail.New(cfg)
	if err != nil {
		report("mail", err)
	} else {
		report("mail ("+mailer.Name()+")", mailer.Verify(ctx))
	}

	repo, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		report("contact store", err)
	} else {
		defer closeStore()
		_, err := repo.List(ctx)
		report("contact store ("+cfg.ContactStore+")", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
