package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jobfinder-chatbot/config"
	"jobfinder-chatbot/internal/app"
	"jobfinder-chatbot/pkg/log"
)

type rootFlags struct {
	configFile string
	logLevel   string
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, opts ...app.Option) int {
	cmd := newRootCmd(stdout, stderr, opts...)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer, opts ...app.Option) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "chatbot [flags] \"<question>\"",
		Short: "Answer one question about JobFinder products and jobs",
		Long: `chatbot routes a single question through an LLM, looks up the JobFinder
catalog when needed, and prints one answer on stdout. Logs go to stderr.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, failures are not usage mistakes.
			cmd.SilenceUsage = true
			return answer(cmd.Context(), flags, args[0], stdout, opts)
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (default: config.yaml in ./config, . or /etc/jobfinder-chatbot/)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	return cmd
}

func answer(ctx context.Context, flags rootFlags, query string, stdout io.Writer, opts []app.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Options{ConfigFile: flags.configFile})
	if err != nil {
		return &app.StartupError{Stage: app.StageConfig, Err: err}
	}
	if flags.logLevel != "" {
		cfg.Logger.Level = flags.logLevel
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx = log.WithTraceID(ctx, uuid.NewString())
	logger.Debugf(ctx, "Environment: %s", cfg.Environment.Name)

	a, err := app.Bootstrap(ctx, cfg, logger, stdout, opts...)
	if err != nil {
		logger.Errorf(ctx, "Failed to start: %v", err)
		return err
	}
	defer func() {
		if cerr := a.Close(context.WithoutCancel(ctx)); cerr != nil {
			logger.Warnf(ctx, "Failed to close: %v", cerr)
		}
	}()

	return a.Ask(ctx, query)
}
