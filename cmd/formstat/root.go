// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/elfaka/site/survey"
	"github.com/elfaka/site/termview"
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:           "formstat",
	Short:         "Render survey analysis results in the terminal.",
	Long:          `formstat prints the per-question cards of a Google Forms analysis as colored tables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(samplesCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("filter", "f", "", "Only show questions whose title contains this text")
	rootCmd.PersistentFlags().Bool("expand", false, "Show every option and text sample")
	rootCmd.PersistentFlags().Int("initial-show", survey.DefaultOptionShow, "Options shown per question before collapsing")
	rootCmd.PersistentFlags().Int("text-show", survey.DefaultTextShow, "Text samples shown per question before collapsing")
	rootCmd.PersistentFlags().String("locale", "ko", "Collation locale for option labels")
	rootCmd.PersistentFlags().String("color", "auto", "Colored output: auto, yes or no")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("Error binding root flags: %v", err))
	}

	fetchCmd.Flags().String("server", "http://localhost:3318", "Base URL of the site backend")
	fetchCmd.Flags().String("form", "", "Google Form ID to analyze")
	fetchCmd.Flags().String("session", "", "Session cookie value")
	fetchCmd.Flags().Int("limit", 0, "Responses to analyze (0 = server default)")
	if err := viper.BindPFlags(fetchCmd.Flags()); err != nil {
		panic(fmt.Sprintf("Error binding fetch flags: %v", err))
	}

	samplesCmd.Flags().String("question", "", "Question ID whose samples are printed")
	samplesCmd.Flags().Int("max", 0, "Maximum samples to print (0 = all)")
	if err := viper.BindPFlags(samplesCmd.Flags()); err != nil {
		panic(fmt.Sprintf("Error binding samples flags: %v", err))
	}
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("FORMSTAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// viewOptions collects the rendering flags from Viper.
func viewOptions() (termview.Options, error) {
	applyColor(viper.GetString("color"))

	tag, err := language.Parse(viper.GetString("locale"))
	if err != nil {
		return termview.Options{}, fmt.Errorf("invalid locale %q: %w", viper.GetString("locale"), err)
	}

	initial := viper.GetInt("initial-show")
	if initial < 1 {
		return termview.Options{}, fmt.Errorf("--initial-show must be at least 1")
	}
	textShow := viper.GetInt("text-show")
	if textShow < 1 {
		return termview.Options{}, fmt.Errorf("--text-show must be at least 1")
	}

	return termview.Options{
		Filter:     viper.GetString("filter"),
		Expanded:   viper.GetBool("expand"),
		OptionShow: initial,
		TextShow:   textShow,
		Locale:     tag,
	}, nil
}

func applyColor(mode string) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "yes", "true", "1", "always":
		color.NoColor = false
	case "no", "false", "0", "never":
		color.NoColor = true
	}
	// auto keeps fatih/color's terminal detection
}
