package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save the config file.

Keys:
  gap             spacing between cubelets, 0 to 1
  sticker_size    pixels per sticker in PNG exports
  palette.<C>     display color for sticker letter C (W Y G B R O), as #rrggbb`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	f, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Config: %s\n", f.Path())
	fmt.Fprintf(w, "gap: %g\n", cfg.Gap)
	fmt.Fprintf(w, "sticker_size: %d\n", cfg.StickerSize)

	letters := make([]string, 0, len(cfg.Palette))
	for letter := range cfg.Palette {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		fmt.Fprintf(w, "palette.%s: %s\n", letter, cfg.Palette[letter])
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	f, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := f.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", f.Path())
	return nil
}
