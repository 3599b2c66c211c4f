package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/ingest"
	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/store"
)

var (
	campaignAttachments []string
	campaignProposalPDF string
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage outreach campaigns",
}

var campaignCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a campaign with an empty org profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		org := &model.OrgProfile{}
		if campaignProposalPDF != "" {
			extractor := ingest.NewPDFExtractor(cfg.OCR.PdfToTextPath, cfg.OCR.MaxPages)
			text := extractor.ExtractFile(ctx, campaignProposalPDF)
			if text == "" {
				return eris.Errorf("no text extracted from %s", campaignProposalPDF)
			}
			org.RawProposalText = text
			if err := ingest.ExtractOrgProfile(ctx, initLLM(), org, text); err != nil {
				return eris.Wrap(err, "extract org profile")
			}
		}
		if err := st.CreateOrgProfile(ctx, org); err != nil {
			return eris.Wrap(err, "create org profile")
		}

		campaign := &model.Campaign{
			Name:         args[0],
			OrgProfileID: org.ID,
			Attachments:  campaignAttachments,
		}
		if err := st.CreateCampaign(ctx, campaign); err != nil {
			return eris.Wrap(err, "create campaign")
		}

		zap.L().Info("campaign created",
			zap.String("id", campaign.ID),
			zap.String("name", campaign.Name),
		)
		fmt.Println(campaign.ID)
		return nil
	},
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		campaigns, err := st.ListCampaigns(ctx)
		if err != nil {
			return eris.Wrap(err, "list campaigns")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCREATED")
		for _, c := range campaigns {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var campaignShowCmd = &cobra.Command{
	Use:   "show <campaign-id>",
	Short: "Show a campaign, its companies, and draft counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		campaign, err := st.GetCampaign(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "get campaign")
		}

		fmt.Printf("Campaign: %s (%s)\n", campaign.Name, campaign.ID)
		if len(campaign.Attachments) > 0 {
			fmt.Printf("Attachments: %v\n", campaign.Attachments)
		}

		companies, err := st.ListCompanies(ctx, campaign.ID)
		if err != nil {
			return eris.Wrap(err, "list companies")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPANY\tWEBSITE\tCONTACTS\tDRAFT STATUS")
		for _, c := range companies {
			cs, err := st.ListContacts(ctx, c.ID)
			if err != nil {
				return eris.Wrap(err, "list contacts")
			}
			status := "-"
			drafts, err := st.ListDrafts(ctx, store.DraftFilter{CompanyID: c.ID, Limit: 1})
			if err == nil && len(drafts) > 0 {
				status = string(drafts[0].Status)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", c.Name, c.Website, len(cs), status)
		}
		return w.Flush()
	},
}

func init() {
	campaignCreateCmd.Flags().StringSliceVar(&campaignAttachments, "attach", nil, "attachment file paths sent with every email")
	campaignCreateCmd.Flags().StringVar(&campaignProposalPDF, "proposal", "", "proposal PDF used to auto-fill the org profile")
	campaignCmd.AddCommand(campaignCreateCmd, campaignListCmd, campaignShowCmd)
	rootCmd.AddCommand(campaignCmd)
}
