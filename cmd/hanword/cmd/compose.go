package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hanword/internal/layout"
	"hanword/pkg/hanstr"
)

var composeCmd = &cobra.Command{
	Use:   "compose [text...]",
	Short: "Compose jamo text into syllables",
	Long: `Compose reads individual jamo and assembles them into syllable
blocks. Arguments are composed one per line; without arguments, lines
are read from stdin. Non-Hangul characters pass through unchanged.

Example:
  hanword compose "ㅇㅏㄴㄴㅕㅇㅎㅏㅅㅔㅇㅛ"
  echo dkssudgktpdy | hanword compose --qwerty`,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)
	composeCmd.Flags().Bool("lenient", false, "keep impossible jamo as bare letters instead of failing")
}

func runCompose(cmd *cobra.Command, args []string) error {
	lenient, _ := cmd.Flags().GetBool("lenient")

	var lay *layout.Layout
	if viper.GetBool("qwerty") {
		var err error
		if lay, err = activeLayout(); err != nil {
			return err
		}
	}

	convert := func(line string) (string, error) {
		if lay != nil {
			line = lay.MapString(line)
		}
		if lenient {
			return hanstr.ComposeLenient(line), nil
		}
		return hanstr.Compose(line)
	}

	if len(args) > 0 {
		out, err := convert(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		out, err := convert(scanner.Text())
		if err != nil {
			return err
		}
		if _, err := writer.WriteString(out + "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}
