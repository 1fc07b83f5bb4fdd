package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"villaoasis/internal/config"
	"villaoasis/internal/content"
	"villaoasis/internal/eventbus"
	"villaoasis/internal/kiosk"
	"villaoasis/internal/logging"
	"villaoasis/internal/metrics"
	"villaoasis/internal/ui"
)

// rootOptions holds the flags of the root command
type rootOptions struct {
	configPath  string
	contentPath string
	listen      string
	noMouse     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "villaoasis",
		Short:         "Holiday Home Oasis Villa in your terminal",
		Long:          "A terminal brochure for Holiday Home Oasis Villa with an autoplaying photo gallery and guest reviews.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&opts.contentPath, "content", "", "TOML dataset replacing the embedded content")
	cmd.Flags().StringVar(&opts.listen, "listen", "", "address of the kiosk status endpoint, e.g. :9090")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse capture (no swipe on the gallery)")

	cmd.AddCommand(newConfigCommand(opts), newContentCommand())
	return cmd
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService()
			path := opts.configPath
			if path == "" {
				path = svc.Path()
			}
			return writeNew(cmd, path, force, func() error {
				return svc.SaveToPath(config.DefaultConfig(), path)
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func newContentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage the brochure dataset",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the embedded dataset as a starting point for --content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "villa.toml"
			if len(args) == 1 {
				path = args[0]
			}
			return writeNew(cmd, path, force, func() error {
				if dir := filepath.Dir(path); dir != "." {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return fmt.Errorf("failed to create content directory: %w", err)
					}
				}
				return os.WriteFile(path, content.EmbeddedTOML(), 0o644)
			})
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

// writeNew runs write unless path exists and force is unset
func writeNew(cmd *cobra.Command, path string, force bool, write func() error) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := write(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// loadConfig reads the config file and applies the command line flags on
// top. An explicit --config must exist; the default location may not.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, string, bool, error) {
	svc := config.NewConfigService()

	path := svc.Path()
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		path = opts.configPath
		cfg, err = svc.LoadFromPath(path)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, "", false, err
	}
	created := false
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		created = true
	}

	if cmd.Flags().Changed("content") {
		cfg.Content.Path = opts.contentPath
	}
	if cmd.Flags().Changed("listen") {
		cfg.Kiosk.Listen = opts.listen
	}
	if opts.noMouse {
		cfg.Terminal.Mouse = false
	}
	return cfg, path, created, nil
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, cfgPath, created, err := loadConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// The bus logs through the configured logger, so it can only exist
	// once the config is read
	bus := eventbus.New(log)
	defer bus.Close()
	bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgPath, Created: created})

	catalog, err := content.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	log.Infow("content loaded",
		"images", len(catalog.Gallery),
		"reviews", len(catalog.Reviews),
		"attractions", len(catalog.Attractions))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer m.Subscribe(bus)()

	sched := ui.NewProgramScheduler()
	model, err := ui.NewModel(cfg, catalog, sched, bus, log)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Terminal.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	sched.Attach(p)
	model.SetProgram(p)

	// Errors published anywhere end up on the status line
	defer bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})()

	var server *kiosk.Server
	if cfg.Kiosk.Listen != "" {
		board := kiosk.NewBoard()
		defer board.Subscribe(bus)()

		server = kiosk.NewServer(cfg.Kiosk.Listen, board, reg, log)
		errCh, err := server.Start()
		if err != nil {
			return err
		}
		go forwardServeErrors(errCh, bus)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		p.Send(ui.ShutdownMsg{Reason: "signal"})
	}()

	log.Infow("starting ui", "config", cfgPath, "mouse", cfg.Terminal.Mouse, "kiosk", cfg.Kiosk.Listen)
	_, runErr := p.Run()
	model.Teardown()
	stop()

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warnw("kiosk shutdown", "error", err)
		}
	}

	if runErr != nil {
		log.Errorw("ui exited with error", "error", runErr)
		return fmt.Errorf("running program: %w", runErr)
	}
	log.Infow("ui exited normally")
	return nil
}

// forwardServeErrors reports a failed kiosk listener on the bus. The
// brochure keeps running without it.
func forwardServeErrors(errCh <-chan error, bus eventbus.EventBus) {
	for err := range errCh {
		bus.Publish(eventbus.ErrorEvent{Message: "kiosk stopped", Err: err})
	}
}
