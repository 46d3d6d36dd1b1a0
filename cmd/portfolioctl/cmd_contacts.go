package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/portfolio/portfolio-server/internal/config"
	"github.com/portfolio/portfolio-server/internal/repository"
)

var contactsJSON bool

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List stored contact submissions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runContacts,
}

func init() {
	contactsCmd.Flags().BoolVar(&contactsJSON, "json", false, "Print the submissions as JSON")
}

func runContacts(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, closeStore, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	raw, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	contacts, err := newestFirst(raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if contactsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(contacts)
	}
	return printContacts(out, contacts)
}

// newestFirst reverses the stored order, which is oldest first.
func newestFirst(raw json.RawMessage) ([]map[string]any, error) {
	var contacts []map[string]any
	if err := json.Unmarshal(raw, &contacts); err != nil {
		return nil, fmt.Errorf("unexpected contacts payload: %w", err)
	}

	for i, j := 0, len(contacts)-1; i < j; i, j = i+1, j-1 {
		contacts[i], contacts[j] = contacts[j], contacts[i]
	}
	return contacts, nil
}

func printContacts(w io.Writer, contacts []map[string]any) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "No messages yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tNAME\tEMAIL\tMESSAGE")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", field(c, "timestamp"), field(c, "name"), field(c, "email"), field(c, "message"))
	}
	return tw.Flush()
}

func field(c map[string]any, key string) any {
	if v, ok := c[key]; ok && v != nil {
		return v
	}
	return "-"
}
