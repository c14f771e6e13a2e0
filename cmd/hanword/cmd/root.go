// Package cmd contains the CLI commands of the hanword tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hanword/internal/config"
	"hanword/internal/layout"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hanword",
	Short: "Compose Korean jamo into syllable text",
	Long: `hanword assembles individual Korean letters (jamo) into syllable
blocks and back.

  hanword compose       jamo text -> composed syllables
  hanword decompose     composed syllables -> jamo text
  hanword interactive   live composition on a raw terminal

Input may be jamo characters directly, or Latin keystrokes mapped
through a keyboard layout with --qwerty.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hanword: %v\n", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hanword.ini)")
	rootCmd.PersistentFlags().String("layout", "", "custom layout file applied on top of dubeolsik")
	rootCmd.PersistentFlags().Bool("qwerty", false, "treat input as QWERTY keystrokes instead of jamo")

	viper.BindPFlag("layout", rootCmd.PersistentFlags().Lookup("layout"))
	viper.BindPFlag("qwerty", rootCmd.PersistentFlags().Lookup("qwerty"))
}

func initConfig() {
	viper.SetEnvPrefix("HANWORD")
	viper.AutomaticEnv()

	cfg, err := config.Load(config.Resolve(cfgFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "hanword: %v\n", err)
		os.Exit(1)
	}
	viper.SetDefault("layout", cfg.LayoutFile)
	viper.SetDefault("qwerty", cfg.Qwerty)
	viper.SetDefault("prompt", cfg.Prompt)
}

// activeLayout resolves the layout the current invocation should use.
func activeLayout() (*layout.Layout, error) {
	if path := viper.GetString("layout"); path != "" {
		return layout.Load(path)
	}
	return layout.Dubeolsik(), nil
}
