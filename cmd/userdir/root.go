package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"userdir/internal/browser"
	"userdir/internal/config"
	"userdir/internal/directory"
	"userdir/internal/logging"
	"userdir/internal/telemetry"
	"userdir/internal/ui"
)

var (
	configPath string
	endpoint   string
	noMouse    bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "userdir",
	Short: "Browse a remote user directory",
	Long: `Fetch the users collection once and browse it as a table.

Select a row for the full record, delete rows with a confirm step, and
open email, phone, website and map links with the system handler.
Deletions only affect this session.

Configuration is read from the config file, USERDIR_* environment
variables and flags, in increasing order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/userdir/config.toml if present)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Users collection URL")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")
}

// session is the per-run wiring shared by the subcommands.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	telemetry *telemetry.Provider
	client    *directory.Client
	closers   []io.Closer
}

// setup loads configuration, applies flags and builds the logger, tracer
// and users client.
func setup(ctx context.Context, cmd *cobra.Command) (*session, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = logFile
	}
	if noMouse {
		cfg.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger, closer, err := logging.New(cfg, id)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger, closers: []io.Closer{closer}}

	if cfg.TracingEnabled() {
		logger.Debug("exporting traces", "otlp_endpoint", cfg.OTLPEndpoint)
	}
	s.telemetry, err = telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		SessionID:   id,
	})
	if err != nil {
		s.close(ctx)
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	s.client = directory.NewClient(cfg.Endpoint,
		directory.WithTracer(s.telemetry.Tracer()),
		directory.WithLogger(logger),
	)
	logger.Info("session started", "endpoint", s.client.Endpoint(), "tracing", s.telemetry.Enabled())
	return s, nil
}

func (s *session) close(ctx context.Context) {
	if err := s.telemetry.Shutdown(ctx); err != nil {
		s.logger.Warn("telemetry shutdown", "err", err)
	}
	for _, c := range s.closers {
		_ = c.Close()
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use `userdir list` for non-interactive output")
	}

	ctx := cmd.Context()
	s, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.close(context.WithoutCancel(ctx))

	model := ui.NewAppModel(ui.Options{
		Fetcher:      s.client,
		Opener:       &browser.ExecOpener{},
		Logger:       s.logger,
		FetchTimeout: s.cfg.FetchTimeout,
	}).AsTeaModel()

	var opts []tea.ProgramOption
	if s.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if s.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		s.logger.Error("program exited", "err", err)
		return err
	}
	return nil
}
