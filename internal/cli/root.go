// Package cli implements the command-line interface for cubelets.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelets"
	"github.com/SeamusWaldron/cubelets/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	gapFlag    float32
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelets",
	Short: "3x3x3 slice-rotation puzzle",
	Long: `Cubelets - pick a cubelet face to select a slice, cycle through the
three axes with repeated picks, and rotate the selected slice a quarter turn.

Play interactively in the terminal, replay event scripts, or print the
facelet net of any move sequence.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubelets/config.json)")
	rootCmd.PersistentFlags().Float32Var(&gapFlag, "gap", -1, "Gap between cubelets (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log session events to stderr")
}

// loadConfig reads the config file named by --config, or the default one,
// and applies the --gap override.
func loadConfig() (*config.File, config.Config, error) {
	var (
		f   *config.File
		err error
	)
	if configPath != "" {
		f, err = config.NewFile(configPath)
	} else {
		f, err = config.NewDefaultFile()
	}
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := f.Config()
	if gapFlag >= 0 {
		cfg.Gap = gapFlag
		if err := cfg.Validate(); err != nil {
			return nil, config.Config{}, err
		}
	}
	return f, cfg, nil
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and a discarding logger otherwise.
func newLogger(w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newSession(cfg config.Config, logger *slog.Logger) *cubelets.Session {
	return cubelets.NewSession(
		cubelets.WithGap(cfg.Gap),
		cubelets.WithLogger(logger),
	)
}

// printSnapshot writes the net and selection summary.
func printSnapshot(w io.Writer, snap cubelets.Snapshot) {
	net := snap.State.Net()
	fmt.Fprint(w, net.String())
	fmt.Fprintln(w)

	if snap.Selected {
		fmt.Fprintf(w, "Selection: %s\n", snap.Selection)
	} else {
		fmt.Fprintln(w, "Selection: none")
	}
	ids := snap.Highlighted.IDs()
	fmt.Fprintf(w, "Highlighted (%d):", len(ids))
	for _, id := range ids {
		fmt.Fprintf(w, " %s", id)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Turns: %d\n", snap.Turns)
	if net.IsSolved() {
		fmt.Fprintln(w, "Solved: yes")
	} else {
		fmt.Fprintln(w, "Solved: no")
	}
	fmt.Fprintf(w, "Facelets: %s\n", net.FaceletString())
}
