package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"hamgaman/internal/catalog"
	"hamgaman/internal/config"
	"hamgaman/internal/logger"
	"hamgaman/internal/nav"
	"hamgaman/internal/player"
	"hamgaman/internal/preview"
	"hamgaman/internal/roster"
	"hamgaman/internal/sidebar"
	"hamgaman/internal/telemetry"
	"hamgaman/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootFlags are the flags shared by every command.
type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
	seed       string
	route      string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "hamgaman",
		Short: "Terminal admin console for the همگامان دانش learning platform",
		Long: `hamgaman is a right-to-left terminal console for managing users and
courses and watching lessons. Settings come from a YAML file located by
--config, $HAMGAMAN_CONFIG or ~/.config/hamgaman/config.yaml.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), f)
		},
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&f.logFile, "log-file", "", "write JSON logs to this file (overrides log_file)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides log_level)")
	cmd.PersistentFlags().StringVar(&f.seed, "seed", "", "catalog YAML with courses and users (overrides seed)")
	cmd.Flags().StringVar(&f.route, "route", sidebar.RouteMyCourses, "page to open first")

	cmd.AddCommand(newExportCmd(f))
	return cmd
}

// load reads the config and applies flag overrides.
func (f *rootFlags) load() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.seed != "" {
		cfg.Seed = f.seed
	}
	return cfg, nil
}

func runTUI(ctx context.Context, f *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ui.PageForRoute(f.route); !ok {
		return fmt.Errorf("unknown route %q", f.route)
	}
	cfg, err := f.load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn("telemetry disabled", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	seed, err := catalog.Load(cfg.Seed)
	if err != nil {
		return err
	}
	log.Info("starting", "courses", len(seed.Courses), "users", len(seed.Users), "route", f.route)

	previews := preview.NewRegistry(nil)
	defer func() {
		if n := previews.ReleaseAll(); n > 0 {
			log.Warn("released leftover previews", "count", n)
		}
	}()

	p := player.New(cfg.Player.Command, cfg.Player.Args, player.WithLogger(log))
	defer p.Close()

	menus := sidebar.DefaultMenus()
	if m, ok := sidebar.LinkMenu("پیوندها", sidebarLinks(cfg.Links)); ok {
		menus = append(menus, m)
	}

	wd, _ := os.Getwd()
	app := ui.NewAppModel(ui.Deps{
		Context:   ctx,
		Options:   sidebarOptions(cfg),
		Menus:     menus,
		Navigator: nav.NewNavigator(nav.NewCommandOpener(cfg.Opener.Command), log),
		Catalog:   catalog.NewStore(seed.Courses),
		Roster:    roster.New(seed.Users),
		Previews:  previews,
		Player:    p,
		Log:       log,
		Route:     f.route,
		PickerDir: wd,
	})

	prog := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// sidebarOptions maps the config file onto the shell options.
func sidebarOptions(cfg config.Config) sidebar.Options {
	s := cfg.Sidebar
	return sidebar.Options{
		Width:          s.Width,
		CollapsedWidth: s.CollapsedWidth,
		Breakpoint:     s.Breakpoint,
		TextColor:      s.TextColor,
		ThemeColor:     s.ThemeColor,
		SecondaryColor: s.SecondaryColor,
		Mode:           sidebar.Mode(strings.ToLower(s.Mode)),
		Direction:      sidebar.Direction(strings.ToLower(s.Direction)),
		Title:          s.Title,
		User: sidebar.User{
			Name:        cfg.User.Name,
			Designation: cfg.User.Designation,
			Image:       cfg.User.Image,
		},
	}
}

func sidebarLinks(links []config.Link) []sidebar.Link {
	out := make([]sidebar.Link, 0, len(links))
	for _, l := range links {
		out = append(out, sidebar.Link{Label: l.Label, Icon: l.Icon, Href: l.Href, Target: l.Target})
	}
	return out
}
