package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omniviewdev/dockerclient-sdk/internal/delegategen"
)

var (
	generateConfig  string
	generateTargets []string
	generateCheck   bool
)

var errStale = errors.New("generated files are out of date")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the files listed in a config",
	Long: `Regenerates the targets listed in a delegategen.yaml config, all of them
unless --target is given. Files whose content is unchanged are not
rewritten. With --check nothing is written and the command fails if any
target is stale.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateConfig, "config", "c", "delegategen.yaml", "config file")
	generateCmd.Flags().StringSliceVarP(&generateTargets, "target", "t", nil, "targets to generate (default all)")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "report stale targets without writing")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := delegategen.LoadConfig(generateConfig)
	if err != nil {
		return err
	}

	targets := cfg.Targets
	if len(generateTargets) > 0 {
		targets = targets[:0:0]
		for _, name := range generateTargets {
			t, err := cfg.Target(name)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}
	}

	stale := 0
	for _, t := range targets {
		res, err := delegategen.Generate(cmd.Context(), cfg, t, generateCheck)
		if err != nil {
			return err
		}
		switch {
		case !res.Changed:
			logger.Debug("up to date", "target", res.Target, "path", res.Path)
		case generateCheck:
			stale++
			logger.Warn("stale", "target", res.Target, "path", res.Path)
		default:
			logger.Info("generated", "target", res.Target, "path", res.Path)
		}
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d of %d targets", errStale, stale, len(targets))
	}
	return nil
}
