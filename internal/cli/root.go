// Package cli defines the unraidctl command tree. Every command maps to a
// single catalog operation (or a sequence of them for "query all"); exactly
// one top-level action executes per invocation.
package cli

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jamesprial/unraid-cli/internal/catalog"
	"github.com/jamesprial/unraid-cli/internal/config"
	"github.com/jamesprial/unraid-cli/internal/graphql"
	"github.com/jamesprial/unraid-cli/internal/safety"
)

// Version is the CLI version reported by --version.
const Version = "1.0.0"

// rootOptions carries flag values and lazily constructed collaborators
// shared by every subcommand.
type rootOptions struct {
	cfgFile string
	address string
	port    int
	apiKey  string
	timeout int
	direct  bool
	yes     bool
	verbose bool

	cfg     *config.Config
	logger  *zap.Logger
	confirm *safety.Confirmer

	gqlClient  graphql.Client
	endpoint   string
	audit      *safety.AuditLogger
	auditClose func()

	// newClient is the session factory; tests swap it for a fake.
	newClient func(cfg config.ServerConfig, logger *zap.Logger) (graphql.Client, string, error)
}

// NewRootCmd builds the unraidctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{
		newClient: defaultNewClient,
	})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:     "unraidctl",
		Short:   "Command-line client for the Unraid GraphQL API",
		Version: Version,
		Long: `unraidctl issues GraphQL queries and mutations against an Unraid
server's management API and prints the raw JSON response.

The server address and API key must be supplied explicitly: by flag,
by environment variable (UNRAID_ADDRESS, UNRAID_API_KEY), through a
.env file, or in the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.auditClose != nil {
				opts.auditClose()
			}
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "path to config file (default: user config dir)")
	pf.StringVar(&opts.address, "address", "", "Unraid server address")
	pf.IntVar(&opts.port, "port", 0, "Unraid server port (default 80)")
	pf.StringVar(&opts.apiKey, "api-key", "", "API key for the management API")
	pf.IntVar(&opts.timeout, "timeout", 0, "request timeout in seconds (default 15)")
	pf.BoolVar(&opts.direct, "direct", false, "connect to the literal address, skipping redirect discovery")
	pf.BoolVarP(&opts.yes, "yes", "y", false, "answer yes to confirmation prompts")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable diagnostic logging to stderr")

	root.AddCommand(
		newQueryCmd(opts),
		newRawCmd(opts),
		newSystemCmd(opts),
		newArrayCmd(opts),
		newParityCmd(opts),
		newUserCmd(opts),
		newAPIKeyCmd(opts),
		newNotificationCmd(opts),
		newRemoteAccessCmd(opts),
		newDockerCmd(opts),
		newVMCmd(opts),
		newMCPCmd(opts),
	)

	return root
}

// complete merges configuration sources in precedence order: flags over
// environment variables over .env over the config file over defaults.
func (o *rootOptions) complete(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return errors.Wrap(err, "load .env")
	}

	cfg := o.loadConfigFile(cmd)
	config.ApplyEnvOverrides(cfg)

	flags := cmd.Flags()
	if flags.Changed("address") {
		cfg.Server.Address = o.address
	}
	if flags.Changed("port") {
		cfg.Server.Port = o.port
	}
	if flags.Changed("api-key") {
		cfg.Server.APIKey = o.apiKey
	}
	if flags.Changed("timeout") {
		cfg.Server.Timeout = o.timeout
	}
	if flags.Changed("direct") {
		cfg.Server.Direct = o.direct
	}
	o.cfg = cfg

	if o.logger == nil {
		o.logger = newLogger(o.verbose)
	}
	o.confirm = safety.NewConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr(), o.yes)

	if cfg.Audit.Enabled && o.audit == nil {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			o.logger.Warn("could not open audit log, audit logging disabled",
				zap.String("path", cfg.Audit.LogPath),
				zap.Error(err),
			)
		} else {
			o.audit = safety.NewAuditLogger(f)
			o.auditClose = func() { _ = f.Close() }
		}
	}

	return nil
}

// loadConfigFile reads the config file named by --config, or the default
// location if it exists. A missing or unreadable file falls back to
// defaults; an explicit --config that cannot be read is reported once the
// logger exists, via stderr on the command.
func (o *rootOptions) loadConfigFile(cmd *cobra.Command) *config.Config {
	path := o.cfgFile
	explicit := path != ""
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return config.DefaultConfig()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if explicit {
			cmd.PrintErrf("warning: could not load config from %q: %v\n", path, err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// client returns the shared GraphQL client, constructing the session (and
// running redirect discovery, unless direct mode is set) on first use.
func (o *rootOptions) client() (graphql.Client, error) {
	if o.gqlClient != nil {
		return o.gqlClient, nil
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	c, endpoint, err := o.newClient(o.cfg.Server, o.logger)
	if err != nil {
		return nil, err
	}
	o.gqlClient = c
	o.endpoint = endpoint
	return c, nil
}

func defaultNewClient(cfg config.ServerConfig, logger *zap.Logger) (graphql.Client, string, error) {
	s, err := graphql.NewSession(cfg, graphql.WithLogger(logger))
	if err != nil {
		return nil, "", err
	}
	return s, s.Endpoint(), nil
}

// newLogger builds a console zap logger writing to stderr. Verbose mode
// lowers the level to debug; the default only surfaces warnings such as a
// failed redirect probe.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// runOperation is the shared execution path for catalog-backed commands.
// Unsupported operations and argument validation errors return before any
// session is constructed, so no network traffic occurs for them.
func runOperation(cmd *cobra.Command, opts *rootOptions, name string, args map[string]any) error {
	op, ok := catalog.Lookup(name)
	if !ok {
		return errors.Errorf("unknown operation %q", name)
	}

	if op.Unsupported != "" {
		return printResult(cmd.OutOrStdout(), nil, graphql.NewUnsupportedError(op.Unsupported))
	}

	if _, err := catalog.BuildVariables(op, args); err != nil {
		return err
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	if op.Kind == catalog.KindMutation && safety.IsDestructive(op.Name) {
		ok, err := opts.confirm.Confirm("This will run " + op.Name + " on " + opts.cfg.Server.Address)
		if err != nil {
			return err
		}
		if !ok {
			cmd.PrintErrln("aborted")
			return nil
		}
	}

	start := time.Now()
	doc, err := catalog.Run(cmd.Context(), client, op, args)

	if op.Kind == catalog.KindMutation {
		result := "ok"
		if err != nil {
			result = "error: " + err.Error()
		}
		safety.Record(opts.audit, op.Name, opts.endpoint, result, args, start)
	}

	return printResult(cmd.OutOrStdout(), doc, err)
}
