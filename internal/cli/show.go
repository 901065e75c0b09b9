package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelets"
	"github.com/SeamusWaldron/cubelets/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the facelet net",
	Long: `Print the facelet net of the solved puzzle, or of the puzzle after a
move sequence.

Examples:
  cubelets show
  cubelets show --moves "R U R' U'"
  cubelets show --moves "M2 E2 S2" --png checker.png`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var (
	showMoves string
	showPNG   string
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showMoves, "moves", "m", "", "Move sequence to apply first")
	showCmd.Flags().StringVar(&showPNG, "png", "", "Also write the net to this PNG file")
}

func runShow(cmd *cobra.Command, args []string) error {
	moves, err := cubelets.ParseMoves(showMoves)
	if err != nil {
		return fmt.Errorf("invalid --moves: %w", err)
	}

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	session := newSession(cfg, newLogger(cmd.ErrOrStderr()))
	session.ApplyMoves(moves)

	snap := session.Snapshot()
	printSnapshot(cmd.OutOrStdout(), snap)

	if len(moves) > 0 {
		simplified := cubelets.SimplifyMoves(moves)
		fmt.Fprintf(cmd.OutOrStdout(), "Moves: %s (%d)\n", cubelets.FormatMoves(moves), len(moves))
		fmt.Fprintf(cmd.OutOrStdout(), "Simplified: %s (%d)\n", cubelets.FormatMoves(simplified), len(simplified))
	}

	if showPNG != "" {
		err := render.SavePNG(showPNG, snap.State.Net(), render.PNGOptions{
			StickerSize: cfg.StickerSize,
			Palette:     cfg.Hex,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", showPNG)
	}

	return nil
}
