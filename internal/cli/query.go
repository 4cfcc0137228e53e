package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jamesprial/unraid-cli/internal/catalog"
)

// newQueryCmd builds the read-only query command. The single positional
// argument selects a catalog query by name, or "all" to run every category
// sequentially.
func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		notifType       string
		notifImportance string
		notifLimit      int
	)

	names := make([]string, 0, len(catalog.Queries())+1)
	for _, op := range catalog.Queries() {
		names = append(names, op.Name)
	}
	names = append(names, "all")

	cmd := &cobra.Command{
		Use:       "query <name|all>",
		Short:     "Run a read-only query against the server",
		Long:      "Run one of the named read-only queries, or \"all\" to fetch every category.\n\nAvailable queries: " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			queryArgs := func(name string) map[string]any {
				if name != "notifications" {
					return nil
				}
				return map[string]any{
					"type":       notifType,
					"importance": notifImportance,
					"limit":      notifLimit,
				}
			}

			name := args[0]
			if name != "all" {
				if _, ok := catalog.Lookup(name); !ok {
					return errors.Errorf("unknown query %q (available: %s)", name, strings.Join(names, ", "))
				}
				return runOperation(cmd, opts, name, queryArgs(name))
			}

			// One call per category, strictly sequential. Individual
			// error records are printed in place and the walk continues.
			for _, op := range catalog.Queries() {
				fmt.Fprintf(cmd.OutOrStdout(), "\n=== %s ===\n", strings.ToUpper(op.Name))
				if err := runOperation(cmd, opts, op.Name, queryArgs(op.Name)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notifType, "type", "UNREAD", "notification type filter (UNREAD or ARCHIVE)")
	cmd.Flags().StringVar(&notifImportance, "importance", "", "notification importance filter (INFO, WARNING, ALERT)")
	cmd.Flags().IntVar(&notifLimit, "limit", 100, "maximum number of notifications to return")

	return cmd
}

// newRawCmd builds the escape hatch for arbitrary GraphQL documents.
func newRawCmd(opts *rootOptions) *cobra.Command {
	var variablesJSON string

	cmd := &cobra.Command{
		Use:   "raw <document>",
		Short: "Execute a raw GraphQL query or mutation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var variables map[string]any
			if variablesJSON != "" {
				if err := json.Unmarshal([]byte(variablesJSON), &variables); err != nil {
					return errors.Wrap(err, "parse --variables")
				}
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			doc, err := client.Execute(cmd.Context(), args[0], variables)
			return printResult(cmd.OutOrStdout(), doc, err)
		},
	}

	cmd.Flags().StringVar(&variablesJSON, "variables", "", "JSON object of variables for the document")

	return cmd
}
