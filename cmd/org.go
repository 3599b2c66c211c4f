package main

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/ingest"
	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/store"
)

var (
	orgCampaignID  string
	orgFieldFlags  = map[string]*string{}
	orgProposalPDF string
)

// orgFieldNames lists the settable org-profile fields in display order.
var orgFieldNames = []string{
	"org_name", "org_website", "contact_name", "contact_email", "contact_phone",
	"mission", "programs", "event_summary", "sponsorship_ask", "sponsorship_tiers",
	"audience", "impact_metrics",
}

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage a campaign's org profile",
}

var orgShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the org profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		org, err := loadOrgProfile(ctx, st, orgCampaignID)
		if err != nil {
			return err
		}

		fields := org.Fields()
		fields["contact_phone"] = org.ContactPhone
		for _, name := range orgFieldNames {
			fmt.Printf("%s: %s\n", name, fields[name])
		}
		return nil
	},
}

var orgSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set org profile fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		org, err := loadOrgProfile(ctx, st, orgCampaignID)
		if err != nil {
			return err
		}

		changed := 0
		for name, val := range orgFieldFlags {
			if !cmd.Flags().Changed(name) {
				continue
			}
			setOrgField(org, name, *val)
			changed++
		}
		if changed == 0 {
			return eris.New("no fields given; pass at least one --<field> flag")
		}

		if err := st.UpdateOrgProfile(ctx, org); err != nil {
			return eris.Wrap(err, "update org profile")
		}
		zap.L().Info("org profile updated", zap.Int("fields", changed))
		return nil
	},
}

var orgAutofillCmd = &cobra.Command{
	Use:   "autofill",
	Short: "Fill the org profile from a proposal PDF",
	Long:  "Extracts text from the proposal PDF and uses the configured LLM to fill empty org profile fields. With provider=none only the raw text is cached for later extraction.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		org, err := loadOrgProfile(ctx, st, orgCampaignID)
		if err != nil {
			return err
		}

		extractor := ingest.NewPDFExtractor(cfg.OCR.PdfToTextPath, cfg.OCR.MaxPages)
		text := extractor.ExtractFile(ctx, orgProposalPDF)
		if text == "" {
			return eris.Errorf("no text extracted from %s", orgProposalPDF)
		}
		org.RawProposalText = text

		if err := ingest.ExtractOrgProfile(ctx, initLLM(), org, text); err != nil {
			return eris.Wrap(err, "extract org profile")
		}

		if err := st.UpdateOrgProfile(ctx, org); err != nil {
			return eris.Wrap(err, "update org profile")
		}
		zap.L().Info("org profile autofilled",
			zap.String("pdf", orgProposalPDF),
			zap.Int("chars", len(text)),
			zap.Bool("fields_extracted", !org.IsEmpty()),
		)
		return nil
	},
}

// loadOrgProfile resolves the campaign's org profile.
func loadOrgProfile(ctx context.Context, st store.Store, campaignID string) (*model.OrgProfile, error) {
	campaign, err := st.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, eris.Wrap(err, "get campaign")
	}
	if campaign.OrgProfileID == "" {
		return nil, eris.Errorf("campaign %s has no org profile", campaignID)
	}
	org, err := st.GetOrgProfile(ctx, campaign.OrgProfileID)
	if err != nil {
		return nil, eris.Wrap(err, "get org profile")
	}
	return org, nil
}

func setOrgField(org *model.OrgProfile, name, val string) {
	switch name {
	case "org_name":
		org.OrgName = val
	case "org_website":
		org.OrgWebsite = val
	case "contact_name":
		org.ContactName = val
	case "contact_email":
		org.ContactEmail = val
	case "contact_phone":
		org.ContactPhone = val
	case "mission":
		org.Mission = val
	case "programs":
		org.Programs = val
	case "event_summary":
		org.EventSummary = val
	case "sponsorship_ask":
		org.SponsorshipAsk = val
	case "sponsorship_tiers":
		org.SponsorshipTiers = val
	case "audience":
		org.Audience = val
	case "impact_metrics":
		org.ImpactMetrics = val
	}
}

func init() {
	for _, c := range []*cobra.Command{orgShowCmd, orgSetCmd, orgAutofillCmd} {
		c.Flags().StringVar(&orgCampaignID, "campaign", "", "campaign ID (required)")
		_ = c.MarkFlagRequired("campaign")
	}
	for _, name := range orgFieldNames {
		var v string
		orgFieldFlags[name] = &v
		orgSetCmd.Flags().StringVar(&v, name, "", "set "+name)
	}
	orgAutofillCmd.Flags().StringVar(&orgProposalPDF, "proposal", "", "path to proposal PDF (required)")
	_ = orgAutofillCmd.MarkFlagRequired("proposal")

	orgCmd.AddCommand(orgShowCmd, orgSetCmd, orgAutofillCmd)
	rootCmd.AddCommand(orgCmd)
}
