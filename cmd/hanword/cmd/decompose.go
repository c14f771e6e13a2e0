package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hanword/pkg/hanstr"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [text...]",
	Short: "Split composed syllables back into jamo",
	Long: `Decompose expands every composed syllable into its jamo letters,
writing final clusters as the pair they fused from so the output feeds
back through compose unchanged. Other characters pass through.

Example:
  hanword decompose 안녕하세요`,
	RunE: runDecompose,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
}

func runDecompose(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Println(hanstr.Decompose(strings.Join(args, " ")))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		if _, err := writer.WriteString(hanstr.Decompose(scanner.Text()) + "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}
