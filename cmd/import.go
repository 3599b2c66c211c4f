package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/ingest"
)

var (
	importCSVPath    string
	importCampaignID string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import target companies from CSV into a campaign",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		if _, err := st.GetCampaign(ctx, importCampaignID); err != nil {
			return eris.Wrap(err, "get campaign")
		}

		f, err := os.Open(importCSVPath)
		if err != nil {
			return eris.Wrap(err, "open csv")
		}
		defer func() { _ = f.Close() }()

		companies, err := ingest.ParseCompaniesCSV(f)
		if err != nil {
			return err
		}

		created := 0
		for i := range companies {
			companies[i].CampaignID = importCampaignID
			if err := st.CreateCompany(ctx, &companies[i]); err != nil {
				return eris.Wrapf(err, "create company %q", companies[i].Name)
			}
			created++
		}

		zap.L().Info("import complete",
			zap.Int("created", created),
			zap.String("csv", importCSVPath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importCSVPath, "csv", "", "path to CSV file (required)")
	importCmd.Flags().StringVar(&importCampaignID, "campaign", "", "campaign ID (required)")
	_ = importCmd.MarkFlagRequired("csv")
	_ = importCmd.MarkFlagRequired("campaign")
	rootCmd.AddCommand(importCmd)
}
