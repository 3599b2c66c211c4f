package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	attemptsDraftID string
	attemptsLimit   int
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "List send attempts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		attempts, err := st.ListSendAttempts(ctx, attemptsDraftID, attemptsLimit)
		if err != nil {
			return eris.Wrap(err, "list send attempts")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tDRAFT\tSTATUS\tERROR")
		for _, a := range attempts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				a.CreatedAt.Format("2006-01-02 15:04:05"), a.DraftID, a.Status, a.Error)
		}
		return w.Flush()
	},
}

func init() {
	attemptsCmd.Flags().StringVar(&attemptsDraftID, "draft", "", "filter by draft ID")
	attemptsCmd.Flags().IntVar(&attemptsLimit, "limit", 100, "max attempts to list")
	rootCmd.AddCommand(attemptsCmd)
}
