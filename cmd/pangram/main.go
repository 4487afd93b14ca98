package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/pangram/audio"
	"github.com/lixenwraith/pangram/config"
	"github.com/lixenwraith/pangram/constants"
	"github.com/lixenwraith/pangram/engine"
	"github.com/lixenwraith/pangram/input"
	"github.com/lixenwraith/pangram/render"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// options holds command-line flags
type options struct {
	colorMode  string
	configPath string
	debug      bool
	mute       bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func versionString() string {
	return constants.AppName + " " + constants.Version
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Interactive pangram checker",
		// Stray arguments and flags are ignored, the TUI still starts
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), versionString())
				return nil
			}
			return runTUI(cmd.Context(), opts)
		},
	}
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), constants.Help)
	})

	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
	rootCmd.Flags().StringVar(&opts.colorMode, "color", "", "Color mode: auto, truecolor, 256")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Write debug log to logs/")
	rootCmd.Flags().BoolVar(&opts.mute, "mute", false, "Disable audio feedback")

	return rootCmd
}

// loadConfig merges the config file, environment and flags
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.colorMode != "" {
		cfg.ColorMode = opts.colorMode
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func runTUI(ctx context.Context, opts *options) error {
	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log.Printf("config: color=%s max_length=%d audio=%v volume=%d keys=%d",
		cfg.ColorMode, cfg.MaxLength, cfg.Audio.Enabled, cfg.Audio.MasterVolume, len(cfg.Keys))

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys); err != nil {
		return err
	}
	theme, err := render.ThemeFromConfig(cfg)
	if err != nil {
		return err
	}

	applyColorMode(cfg.ColorMode)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPANGRAM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sounds := audio.NewSoundManager(audio.FromSettings(cfg.Audio))
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	eng := engine.New(screen, engine.Config{
		Keys:      keys,
		Theme:     theme,
		MaxLength: cfg.MaxLength,
		Listener:  sounds,
	})

	err = eng.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Printf("terminated by signal")
		return nil
	}
	if err != nil {
		log.Printf("exit with error: %v", err)
	}
	return err
}
