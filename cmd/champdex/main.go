package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/config"
	"github.com/mmcdole/champdex/internal/ddragon"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/log"
	"github.com/mmcdole/champdex/internal/onboarding"
	"github.com/mmcdole/champdex/internal/store"
	"github.com/mmcdole/champdex/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var errNoTTY = errors.New("champdex needs an interactive terminal")

func main() {
	var (
		showVersion     bool
		resetOnboarding bool
		configFile      string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&resetOnboarding, "reset-onboarding", false, "show the onboarding carousel again on next start")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("champdex %s\n", Version)
		return
	}

	if err := run(configFile, resetOnboarding); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, resetOnboarding bool) error {
	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting champdex", "version", Version)

	// Open the flag store
	storePath, err := config.ExpandHome(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve store path: %w", err)
	}

	if resetOnboarding {
		flags, err := store.Open(storePath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer flags.Close()
		return runReset(flags)
	}

	flags, err := openFlags(storePath, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer flags.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	// Create catalog client and services
	client := ddragon.NewClient(cfg.Catalog, logger)
	catalogSvc := catalog.NewService(client, logger)
	onboardingSvc := onboarding.NewService(flags, logger)

	// Create TUI model
	model := tui.NewModel(onboardingSvc, catalogSvc, cfg, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// openFlags opens the flag file. When it is locked or unreadable the app still
// runs on a memory-only store, and the onboarding choice is not kept.
func openFlags(path string, logger *slog.Logger) (*store.FlagStore, error) {
	flags, err := store.Open(path)
	if err == nil {
		return flags, nil
	}
	if !errors.Is(err, domain.ErrPersistence) {
		return nil, err
	}

	logger.Warn("flag store unavailable, onboarding state will not persist", "path", path, "error", err)
	return store.Open("")
}

// runReset clears the onboarding flag without starting the TUI.
// Unlike the in-app reset, a store failure here is reported.
func runReset(flags domain.FlagStore) error {
	if err := flags.Remove(domain.OnboardingKey); err != nil {
		return fmt.Errorf("failed to reset onboarding: %w", err)
	}
	fmt.Println("✓ Onboarding will show on next start.")
	return nil
}
