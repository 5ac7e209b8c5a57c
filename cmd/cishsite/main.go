package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cishsite/internal/config"
	"cishsite/internal/content"
	"cishsite/internal/eventbus"
	"cishsite/internal/logger"
	"cishsite/internal/ui"
)

// options holds the root command flags
type options struct {
	configPath  string
	view        string
	interval    time.Duration
	varieties   string
	contentPath string
	debug       bool

	// fileProblems holds values from the config file that were replaced
	fileProblems error
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cishsite",
		Short: "ICAR-CISH in the terminal",
		Long: `cishsite is the site of the Central Institute for Subtropical Horticulture
as an interactive terminal application: home, research projects and news
pages with searchable card grids and auto-advancing carousels.

Run without arguments to start the interactive site.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.view, "view", "", "start view: home, research or news")
	flags.DurationVar(&opts.interval, "interval", 0, "carousel autoplay interval, e.g. 4s")
	flags.StringVar(&opts.varieties, "varieties", "", "varieties carousel preset: fruit or mango")
	flags.StringVar(&opts.contentPath, "content", "", "YAML content file replacing the built-in site content")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(newListCmd(opts), newConfigCmd(opts))
	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// load reads the config file and applies flag overrides on top of it.
// Invalid file values are reported on stderr and replaced; invalid flags fail.
func (o *options) load(stderr io.Writer) (*config.Config, error) {
	svc := config.NewConfigService()
	if o.configPath != "" {
		svc = config.NewConfigServiceAt(o.configPath)
	}
	cfg, err := svc.Load()
	var invalid *config.InvalidValuesError
	switch {
	case errors.As(err, &invalid):
		o.fileProblems = invalid
		fmt.Fprintf(stderr, "warning: %v\n", invalid)
	case err != nil:
		return nil, fmt.Errorf("failed to load config %s: %w", svc.Path(), err)
	}

	if o.view != "" {
		cfg.UI.StartView = o.view
	}
	if o.interval != 0 {
		cfg.Carousel.IntervalMS = int(o.interval / time.Millisecond)
	}
	if o.varieties != "" {
		cfg.Varieties.Preset = o.varieties
	}
	if o.contentPath != "" {
		cfg.Content.Path = o.contentPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// loadContent returns the configured content, falling back to the built-in
// document when the file cannot be used
func loadContent(cfg *config.Config, log *zap.Logger) (content.Repository, error) {
	if cfg.Content.Path != "" {
		repo, err := content.LoadFile(cfg.Content.Path)
		if err == nil {
			return repo, nil
		}
		log.Warn("using built-in content", zap.String("path", cfg.Content.Path), zap.Error(err))
	}
	return content.Default()
}

func run(ctx context.Context, cfg *config.Config, opts *options) error {
	log, err := logger.New(logger.Config{Path: cfg.Log.Path, Level: cfg.Log.Level, Debug: opts.debug})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if opts.fileProblems != nil {
		log.Warn("config file has invalid values", zap.Error(opts.fileProblems))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := loadContent(cfg, log)
	if err != nil {
		return err
	}

	bus := eventbus.New(log)
	defer bus.Close()
	subscribeAnalytics(bus, log.Named("analytics"))

	model := ui.NewModel(bus, cfg, repo, log)
	defer model.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	log.Info("starting", zap.String("view", cfg.UI.StartView), zap.Duration("interval", cfg.Carousel.Interval()))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited normally")
	return nil
}

// subscribeAnalytics logs what visitors do. Automatic carousel advances are
// too frequent to be interesting.
func subscribeAnalytics(bus eventbus.EventBus, log *zap.Logger) {
	bus.Subscribe(eventbus.EventViewChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ViewChangedEvent); ok {
			log.Info("view changed", zap.String("from", ev.From), zap.String("to", ev.To))
		}
	})
	bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.QueryChangedEvent); ok {
			log.Info("query changed",
				zap.String("section", ev.Section),
				zap.String("text", ev.Text),
				zap.Any("facets", ev.Facets),
				zap.Int("results", ev.Results))
		}
	})
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok && !ev.Auto {
			log.Debug("slide changed", zap.String("section", ev.Section), zap.Int("index", ev.Index))
		}
	})
	bus.Subscribe(eventbus.EventArticleOpened, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ArticleOpenedEvent); ok {
			log.Info("article opened", zap.Int("id", ev.ArticleID), zap.String("title", ev.Title))
		}
	})
	bus.Subscribe(eventbus.EventInstituteViewed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.InstituteViewedEvent); ok {
			log.Info("institute viewed", zap.Int("id", ev.InstituteID), zap.String("institute", ev.ShortName))
		}
	})
	bus.Subscribe(eventbus.EventNewsletterSubscribed, func(e eventbus.DomainEvent) {
		log.Info("newsletter subscription")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(ev.Message, zap.Error(ev.Err))
		}
	})
}
