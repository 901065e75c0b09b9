package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelets/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the interactive puzzle.

Move the cursor over the net with h/j/k/l (or w/a/s/d) and press enter to
pick the sticker under it. Picking the same cubelet again cycles through
the three axes. The left and right arrows rotate the selected slice and
esc clears the selection.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playLogFile string
	playPNG     string
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "Write session logs to this file")
	playCmd.Flags().StringVar(&playPNG, "png", "cubelets.png", "PNG export path for the p key")
}

func runPlay(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger := slog.New(slog.DiscardHandler)
	if playLogFile != "" {
		f, err := os.OpenFile(playLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	session := newSession(cfg, logger)

	model := tui.New(session, tui.Options{
		Palette:     cfg.Hex,
		StickerSize: cfg.StickerSize,
		PNGPath:     playPNG,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	return nil
}
