package cli

import (
	"github.com/spf13/cobra"
)

// newSystemCmd builds the system power-control commands.
func newSystemCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "System power control",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "reboot",
			Short: "Reboot the Unraid server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "system.reboot", nil)
			},
		},
		&cobra.Command{
			Use:   "shutdown",
			Short: "Shut down the Unraid server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "system.shutdown", nil)
			},
		},
	)

	return cmd
}

// newArrayCmd builds the array start/stop commands.
func newArrayCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "array",
		Short: "Array control",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start the array",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "array.start", nil)
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the array",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "array.stop", nil)
			},
		},
	)

	return cmd
}

// newParityCmd builds the parity-check control commands.
func newParityCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parity",
		Short: "Parity check control",
	}

	var correct bool
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a parity check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, "parity.start", map[string]any{"correct": correct})
		},
	}
	start.Flags().BoolVar(&correct, "correct", false, "correct parity errors instead of only reporting them")

	cmd.AddCommand(
		start,
		&cobra.Command{
			Use:   "pause",
			Short: "Pause a running parity check",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "parity.pause", nil)
			},
		},
		&cobra.Command{
			Use:   "resume",
			Short: "Resume a paused parity check",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "parity.resume", nil)
			},
		},
		&cobra.Command{
			Use:   "cancel",
			Short: "Cancel a running parity check",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "parity.cancel", nil)
			},
		},
	)

	return cmd
}
