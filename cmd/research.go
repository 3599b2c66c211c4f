package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/pipeline"
)

var (
	researchCampaignID string
	researchLimit      int
	researchLanguage   string
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research companies and compose drafts",
	Long:  "For every company in the campaign: fetch key website pages, extract and rank contact emails, summarize a company profile, and compose a personalized draft email.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		runner := pipeline.NewRunner(st, initLLM(), cfg,
			pipeline.WithLimit(researchLimit),
			pipeline.WithLanguage(researchLanguage),
		)
		results, err := runner.Run(ctx, researchCampaignID)
		if err != nil {
			return err
		}

		ok, failed := 0, 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Printf("[ERROR] %s: %v\n", r.CompanyName, r.Err)
				continue
			}
			ok++
			recipient := r.Recipient
			if recipient == "" {
				recipient = "(no contact found)"
			}
			fmt.Printf("[OK] %s | pages=%d contacts=%d -> %s\n",
				r.CompanyName, r.PagesUsed, len(r.Contacts), recipient)
		}

		zap.L().Info("research complete",
			zap.String("campaign", researchCampaignID),
			zap.Int("ok", ok),
			zap.Int("failed", failed),
		)
		return nil
	},
}

func init() {
	researchCmd.Flags().StringVar(&researchCampaignID, "campaign", "", "campaign ID (required)")
	researchCmd.Flags().IntVar(&researchLimit, "limit", 0, "research at most N companies (0 = all)")
	researchCmd.Flags().StringVar(&researchLanguage, "language", "", "draft language (vi|en), overrides defaults.language")
	_ = researchCmd.MarkFlagRequired("campaign")
	rootCmd.AddCommand(researchCmd)
}
