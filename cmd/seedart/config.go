package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/seedart/internal/config"
)

var (
	flagConfigDefault bool
	flagConfigOutput  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration seedart would use, after the search order and
flag overrides are applied. With --default, print the built-in document
instead, which is a good starting point for ~/.seedart/seedart.yaml.

Examples:
  seedart config
  seedart config --default -o ~/.seedart/seedart.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default configuration")
	configCmd.Flags().StringVarP(&flagConfigOutput, "output", "o", "", "Output file (default: stdout)")
}

func runConfig(_ *cobra.Command, _ []string) {
	out := config.DefaultYAML()
	if !flagConfigDefault {
		var err error
		if out, err = yaml.Marshal(loadConfig()); err != nil {
			fail("failed to encode config: %v", err)
		}
	}
	if err := writeOutput(flagConfigOutput, out); err != nil {
		fail("%v", err)
	}
}
