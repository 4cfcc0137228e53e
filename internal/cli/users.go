package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// newUserCmd builds the user management commands.
func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}

	var (
		name        string
		password    string
		description string
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{
				"name":     name,
				"password": password,
			}
			if description != "" {
				input["description"] = description
			}
			return runOperation(cmd, opts, "user.add", map[string]any{"input": input})
		},
	}
	add.Flags().StringVar(&name, "name", "", "username (required)")
	add.Flags().StringVar(&password, "password", "", "password (required)")
	add.Flags().StringVar(&description, "description", "", "user description")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("password")

	var deleteName string
	del := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{"name": deleteName}
			return runOperation(cmd, opts, "user.delete", map[string]any{"input": input})
		},
	}
	del.Flags().StringVar(&deleteName, "name", "", "username (required)")
	_ = del.MarkFlagRequired("name")

	cmd.AddCommand(add, del)
	return cmd
}

// newAPIKeyCmd builds the API key management commands.
func newAPIKeyCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "API key management",
	}

	var (
		name        string
		description string
		roles       []string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{"name": name}
			if description != "" {
				input["description"] = description
			}
			if len(roles) > 0 {
				normalized := make([]string, 0, len(roles))
				for _, r := range roles {
					if r = strings.TrimSpace(r); r != "" {
						normalized = append(normalized, r)
					}
				}
				input["roles"] = normalized
			}
			return runOperation(cmd, opts, "apikey.create", map[string]any{"input": input})
		},
	}
	create.Flags().StringVar(&name, "name", "", "API key name (required)")
	create.Flags().StringVar(&description, "description", "", "API key description")
	create.Flags().StringSliceVar(&roles, "roles", nil, "roles to grant (admin, guest, connect)")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)
	return cmd
}
