package cli

import (
	"github.com/spf13/cobra"
)

// newNotificationCmd builds the notification management commands.
func newNotificationCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "Notification management",
	}

	var (
		title      string
		subject    string
		message    string
		importance string
		link       string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{
				"title":       title,
				"subject":     subject,
				"description": message,
				"importance":  importance,
			}
			if link != "" {
				input["link"] = link
			}
			return runOperation(cmd, opts, "notification.create", map[string]any{"input": input})
		},
	}
	create.Flags().StringVar(&title, "title", "", "notification title (required)")
	create.Flags().StringVar(&subject, "subject", "", "notification subject (required)")
	create.Flags().StringVar(&message, "message", "", "notification body (required)")
	create.Flags().StringVar(&importance, "importance", "INFO", "importance level (INFO, WARNING, ALERT)")
	create.Flags().StringVar(&link, "link", "", "optional link")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("subject")
	_ = create.MarkFlagRequired("message")

	archive := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, "notification.archive", map[string]any{"id": args[0]})
		},
	}

	var archiveImportance string
	archiveAll := &cobra.Command{
		Use:   "archive-all",
		Short: "Archive all notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opArgs := map[string]any{}
			if archiveImportance != "" {
				opArgs["importance"] = archiveImportance
			}
			return runOperation(cmd, opts, "notification.archive-all", opArgs)
		},
	}
	archiveAll.Flags().StringVar(&archiveImportance, "importance", "", "only archive this importance level (INFO, WARNING, ALERT)")

	cmd.AddCommand(create, archive, archiveAll)
	return cmd
}

// newRemoteAccessCmd builds the remote access configuration command.
func newRemoteAccessCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote-access",
		Short: "Remote access configuration",
	}

	var (
		accessType  string
		forwardType string
		port        int
	)

	setup := &cobra.Command{
		Use:   "setup",
		Short: "Configure remote access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := map[string]any{"accessType": accessType}
			if forwardType != "" {
				input["forwardType"] = forwardType
			}
			if port > 0 {
				input["port"] = port
			}
			return runOperation(cmd, opts, "remote-access.setup", map[string]any{"input": input})
		},
	}
	setup.Flags().StringVar(&accessType, "access-type", "", "access type (DYNAMIC, ALWAYS, DISABLED; required)")
	setup.Flags().StringVar(&forwardType, "forward-type", "", "port forwarding type (UPNP, STATIC)")
	setup.Flags().IntVar(&port, "remote-port", 0, "port for remote access")
	_ = setup.MarkFlagRequired("access-type")

	cmd.AddCommand(setup)
	return cmd
}
