package cmd

import (
	"fmt"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hanword/pkg/hanstr"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"type"},
	Short:   "Compose live from the keyboard",
	Long: `Interactive reads raw keystrokes, maps them through the active
layout and shows the composed text as it grows. Backspace removes the
last letter, Enter finishes the line, Esc or Ctrl+C quits.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	lay, err := activeLayout()
	if err != nil {
		return err
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	prompt := viper.GetString("prompt")
	fmt.Printf("layout: %s (Esc quits)\n", lay.Name())

	var typed []rune
	lastWidth := 0

	render := func() string {
		line := hanstr.ComposeLenient(string(typed))
		width := runewidth.StringWidth(prompt + line)
		pad := ""
		if width < lastWidth {
			pad = strings.Repeat(" ", lastWidth-width)
		}
		lastWidth = width
		fmt.Printf("\r%s%s%s\r%s%s", prompt, line, pad, prompt, line)
		return line
	}
	render()

	for {
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC, keyboard.KeyCtrlD:
			fmt.Println()
			return nil
		case keyboard.KeyEnter:
			fmt.Println()
			typed = typed[:0]
			lastWidth = 0
			render()
			continue
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if len(typed) > 0 {
				typed = typed[:len(typed)-1]
			}
			render()
			continue
		case keyboard.KeySpace:
			typed = append(typed, ' ')
			render()
			continue
		}

		if ch == 0 {
			continue
		}
		if j, ok := lay.JamoFor(ch); ok {
			typed = append(typed, j)
		} else {
			typed = append(typed, ch)
		}
		render()
	}
}
