package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelets"
	"github.com/SeamusWaldron/cubelets/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Apply an event script",
	Long: `Apply a script of pick, cancel, rotate and move events, one per line,
then print the resulting net, selection and highlighted cubelets.

Reads from stdin when no script is given or the script is "-".

Script lines:
  pick 2-1-1 +x        # pick cubelet 2-1-1 on its +x face
  rotate right         # rotate the selected slice (+1); "left" is -1
  cancel               # clear the selection
  move R U R' U'       # apply face-turn notation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

var runPNG string

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runPNG, "png", "", "Also write the final net to this PNG file")
}

func runScript(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	events, err := readScript(in)
	if err != nil {
		return err
	}

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	session := newSession(cfg, newLogger(cmd.ErrOrStderr()))

	ctx := cmd.Context()
	ch := make(chan cubelets.Event)
	go func() {
		defer close(ch)
		for _, ev := range events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := session.Run(ctx, ch); err != nil {
		return fmt.Errorf("script interrupted: %w", err)
	}

	snap := session.Snapshot()
	printSnapshot(cmd.OutOrStdout(), snap)

	if runPNG != "" {
		err := render.SavePNG(runPNG, snap.State.Net(), render.PNGOptions{
			StickerSize: cfg.StickerSize,
			Palette:     cfg.Hex,
			Highlight:   snap.Highlighted,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", runPNG)
	}

	return nil
}

func readScript(r io.Reader) ([]cubelets.Event, error) {
	events, err := cubelets.ParseScript(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return events, nil
}
