package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/mailer"
	"github.com/sponsorlane/outreach-cli/internal/worker"
)

var workerOnce bool

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Send approved drafts through SMTP",
	Long:  "Claims approved drafts one at a time and delivers them over SMTP, pacing sends by the configured rate limit. Each terminal outcome is recorded as a send attempt. With --once the worker processes at most one draft and exits.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		sender := mailer.NewSMTPSender(cfg.SMTP)
		w := worker.New(st, sender, cfg.Worker, os.Stdout)

		zap.L().Info("worker started",
			zap.Bool("once", workerOnce),
			zap.Duration("rate_limit", cfg.Worker.RateLimit()),
		)
		return w.Run(ctx, workerOnce)
	},
}

func init() {
	workerCmd.Flags().BoolVar(&workerOnce, "once", false, "process at most one approved draft, then exit")
	rootCmd.AddCommand(workerCmd)
}
