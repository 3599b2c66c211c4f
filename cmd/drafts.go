package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/store"
)

var (
	draftsCampaignID string
	draftsCompanyID  string
	draftsStatus     string
	draftsLimit      int
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List and manage outreach drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		drafts, err := st.ListDrafts(ctx, store.DraftFilter{
			CampaignID: draftsCampaignID,
			CompanyID:  draftsCompanyID,
			Status:     model.DraftStatus(draftsStatus),
			Limit:      draftsLimit,
		})
		if err != nil {
			return eris.Wrap(err, "list drafts")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tCOMPANY\tRECIPIENT\tSUBJECT")
		for _, d := range drafts {
			companyName := d.CompanyID
			if company, err := st.GetCompany(ctx, d.CompanyID); err == nil {
				companyName = company.Name
			}
			recipient := "-"
			if d.ContactID != "" {
				if contact, err := st.GetContact(ctx, d.ContactID); err == nil {
					recipient = contact.Email
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Status, companyName, recipient, d.Subject)
		}
		return w.Flush()
	},
}

var draftsShowCmd = &cobra.Command{
	Use:   "show <draft-id>",
	Short: "Show a draft's full body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return eris.Wrap(err, "init store")
		}
		defer func() { _ = st.Close() }()

		d, err := st.GetDraft(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "get draft")
		}

		fmt.Printf("Status: %s\nLanguage: %s\nNotes: %s\nSubject: %s\n\n%s\n", d.Status, d.Language, d.Notes, d.Subject, d.Body)
		return nil
	},
}

var draftsApproveCmd = &cobra.Command{
	Use:   "approve <draft-id>...",
	Short: "Approve drafts for sending",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionDrafts(cmd, args, model.DraftStatusDraft, model.DraftStatusApproved)
	},
}

var draftsUnapproveCmd = &cobra.Command{
	Use:   "unapprove <draft-id>...",
	Short: "Move approved drafts back to draft",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transitionDrafts(cmd, args, model.DraftStatusApproved, model.DraftStatusDraft)
	},
}

// transitionDrafts applies from->to for each draft id, enforcing the
// lifecycle: only drafts currently in the from state move. The conditional
// update means a draft claimed by a concurrent worker is never overwritten.
func transitionDrafts(cmd *cobra.Command, ids []string, from, to model.DraftStatus) error {
	ctx := cmd.Context()

	st, err := initStore(ctx)
	if err != nil {
		return eris.Wrap(err, "init store")
	}
	defer func() { _ = st.Close() }()

	for _, id := range ids {
		if err := st.TransitionDraft(ctx, id, from, to); err != nil {
			return err
		}
		zap.L().Info("draft transitioned",
			zap.String("draft", id),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
	}
	return nil
}

func init() {
	draftsListCmd.Flags().StringVar(&draftsCampaignID, "campaign", "", "filter by campaign ID")
	draftsListCmd.Flags().StringVar(&draftsCompanyID, "company", "", "filter by company ID")
	draftsListCmd.Flags().StringVar(&draftsStatus, "status", "", "filter by status (draft|approved|sending|sent|failed)")
	draftsListCmd.Flags().IntVar(&draftsLimit, "limit", 100, "max drafts to list")

	draftsCmd.AddCommand(draftsListCmd, draftsShowCmd, draftsApproveCmd, draftsUnapproveCmd)
	rootCmd.AddCommand(draftsCmd)
}
