package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kirkle/app"
	"kirkle/hal"
	"kirkle/internal/buildinfo"
	"kirkle/internal/config"
)

var (
	configPath string
	verbose    bool
	headless   bool
	hz         int
	ticks      uint64
	hold       []string
	realtime   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kirkle",
	Short: "A circle and a square under gravity, drag and your arrow keys",
	Long: `kirkle opens a window with two bodies: a white circle driven by the
arrow keys and a square driven by WASD. Both fall under depth-dependent
gravity, bounce off the walls and collide with each other.

Keys: r reset | p pause | f1 HUD | esc quit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGame,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "kirkle.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "kirkle.yaml", "Path to the YAML config file.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")

	rootCmd.Flags().BoolVar(&headless, "headless", false, "Run without a window.")
	rootCmd.Flags().IntVar(&hz, "hz", 0, "Tick rate in headless mode (0 = config value).")
	rootCmd.Flags().Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	rootCmd.Flags().BoolVar(&realtime, "realtime", false, "Pace bounded headless runs at --hz in wall time.")
	rootCmd.Flags().StringSliceVar(&hold, "hold", nil, "Keys held for the whole headless run, e.g. left,w.")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd, versionCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	appCfg := app.Config{
		Params:  cfg.Physics,
		Palette: palette,
		HUD:     cfg.HUD.Enabled,
		Build:   buildinfo.Short(),
	}

	if !headless {
		if verbose {
			appCfg.LogEvery = uint64(cfg.Window.TPS)
		}
		return hal.RunWindow(hal.WindowConfig{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
		}, logger, app.Factory(appCfg))
	}

	hcfg := hal.HeadlessConfig{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Hz:       cfg.Headless.Hz,
		Ticks:    ticks,
		Realtime: realtime,
	}
	if hz > 0 {
		hcfg.Hz = hz
	}
	for _, name := range hold {
		code, err := hal.ParseKeyCode(name)
		if err != nil {
			return fmt.Errorf("--hold: %w", err)
		}
		hcfg.Hold = append(hcfg.Hold, code)
	}
	appCfg.LogEvery = cfg.Headless.LogEvery

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("headless run",
		zap.Int("hz", hcfg.Hz),
		zap.Uint64("ticks", hcfg.Ticks),
		zap.Bool("realtime", hcfg.Realtime),
		zap.String("hold", strings.Join(hold, ",")),
	)
	err = hal.RunHeadless(ctx, hcfg, logger, app.Factory(appCfg))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
