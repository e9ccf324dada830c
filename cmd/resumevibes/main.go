package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-vibes/internal/config"
)

type rootOptions struct {
	model   string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	var rootCmd = &cobra.Command{
		Use:           "resumevibes",
		Short:         "Check how well a resume matches a job description",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "Gemini model to use (default from GEMINI_MODEL)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print progress logs to stderr")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newModelsCmd(opts))

	return rootCmd
}

func (o *rootOptions) loadConfig() *config.Config {
	cfg := config.Load()
	if o.model != "" {
		cfg.Gemini.Model = o.model
	}
	return cfg
}
