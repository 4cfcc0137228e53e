package cli

import (
	"github.com/spf13/cobra"
)

// newDockerCmd builds the Docker container control commands. The remote
// schema does not implement these yet; they respond with the fixed "not
// supported" record without contacting the server.
func newDockerCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docker",
		Short: "Docker container control",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start <container-id>",
			Short: "Start a Docker container",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "docker.start", map[string]any{"id": args[0]})
			},
		},
		&cobra.Command{
			Use:   "stop <container-id>",
			Short: "Stop a Docker container",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "docker.stop", map[string]any{"id": args[0]})
			},
		},
		&cobra.Command{
			Use:   "restart <container-id>",
			Short: "Restart a Docker container",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "docker.restart", map[string]any{"id": args[0]})
			},
		},
	)

	return cmd
}

// newVMCmd builds the virtual machine control commands. Same situation as
// the Docker commands: static "not supported" responses.
func newVMCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm",
		Short: "Virtual machine control",
	}

	var force bool
	stop := &cobra.Command{
		Use:   "stop <uuid>",
		Short: "Stop a virtual machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, opts, "vm.stop", map[string]any{"uuid": args[0], "force": force})
		},
	}
	stop.Flags().BoolVar(&force, "force", false, "force power off instead of graceful shutdown")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start <uuid>",
			Short: "Start a virtual machine",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "vm.start", map[string]any{"uuid": args[0]})
			},
		},
		stop,
		&cobra.Command{
			Use:   "pause <uuid>",
			Short: "Pause a virtual machine",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "vm.pause", map[string]any{"uuid": args[0]})
			},
		},
		&cobra.Command{
			Use:   "resume <uuid>",
			Short: "Resume a paused virtual machine",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, opts, "vm.resume", map[string]any{"uuid": args[0]})
			},
		},
	)

	return cmd
}
