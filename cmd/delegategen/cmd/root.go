// Package cmd implements the delegategen command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   hclog.Logger = hclog.NewNullLogger()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "delegategen",
	Short: "Generate forwarding wrappers and mocks for interfaces",
	Long: `delegategen loads an interface type and renders either a forwarding
wrapper, whose methods call the same method on a delegate and report the
result to answer or void hooks, or a testify mock implementing it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := hclog.LevelFromString(logLevel)
		if level == hclog.NoLevel {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "delegategen",
			Level:  level,
			Output: cmd.ErrOrStderr(),
		})
		return setupTracing(cmd)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, shutdownTracing(context.Background()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP/HTTP traces URL, e.g. http://localhost:4318/v1/traces")
}

// openOutput returns the writer for path, "-" meaning stdout.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
