// Package main provides the solitaire terminal game.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/MarcusTL12/solitare/internal/config"
	"github.com/MarcusTL12/solitare/internal/game"
	"github.com/MarcusTL12/solitare/internal/tui"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	twiceWidth  bool
	seed        uint64
	printDeal   bool
	dumpJSON    bool
	logFile     string
	logLevel    string
	envFile     string
	showVersion bool
)

func init() {
	flag.BoolVar(&twiceWidth, "tw", false, "Draw every card two cells wide (shorthand)")
	flag.BoolVar(&twiceWidth, "twice-width", false, "Draw every card two cells wide")
	flag.Uint64Var(&seed, "seed", 0, "Deal seed (0 = use current time)")
	flag.BoolVar(&printDeal, "print", false, "Print the dealt table as text and exit")
	flag.BoolVar(&dumpJSON, "json", false, "Print the dealt table as a JSON snapshot and exit")
	flag.StringVar(&logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flag.StringVar(&envFile, "env", ".env", "Load settings from this .env file if it exists")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("solitaire %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	session := game.NewSession(game.Options{
		Seed:            cfg.Seed,
		Rules:           cfg.Rules(),
		CheckInvariants: cfg.CheckInvariants,
		Logger:          logger,
	})

	switch {
	case printDeal:
		return tui.WriteText(os.Stdout, session.Table(), cfg.TwiceWidth)
	case dumpJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(session.Snapshot())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	logger.WithFields(logrus.Fields{
		"version":     Version,
		"twice_width": cfg.TwiceWidth,
	}).Info("Starting solitaire.")
	return tui.Run(screen, session, tui.Layout{TwiceWidth: cfg.TwiceWidth}, logger)
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tw", "twice-width":
			cfg.TwiceWidth = twiceWidth
		case "seed":
			cfg.Seed = seed
		case "log-file":
			cfg.LogFile = logFile
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
}
