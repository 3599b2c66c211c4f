package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

// seedCampaign creates a campaign with an org profile and one company.
func seedCampaign(t *testing.T, st *SQLiteStore) (*model.Campaign, *model.Company) {
	t.Helper()
	ctx := context.Background()

	org := &model.OrgProfile{OrgName: "Green Steps"}
	require.NoError(t, st.CreateOrgProfile(ctx, org))

	campaign := &model.Campaign{Name: "Spring 2026", OrgProfileID: org.ID, Attachments: []string{"deck.pdf"}}
	require.NoError(t, st.CreateCampaign(ctx, campaign))

	company := &model.Company{CampaignID: campaign.ID, Name: "Acme", Website: "https://acme.com"}
	require.NoError(t, st.CreateCompany(ctx, company))

	return campaign, company
}

func TestSQLite_Campaign_RoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	campaign, _ := seedCampaign(t, st)

	got, err := st.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring 2026", got.Name)
	assert.Equal(t, campaign.OrgProfileID, got.OrgProfileID)
	assert.Equal(t, []string{"deck.pdf"}, got.Attachments)

	all, err := st.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLite_Campaign_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetCampaign(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_OrgProfile_Update(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	campaign, _ := seedCampaign(t, st)

	org, err := st.GetOrgProfile(ctx, campaign.OrgProfileID)
	require.NoError(t, err)

	org.Mission = "Plant trees in every district"
	org.ContactEmail = "hello@greensteps.org"
	require.NoError(t, st.UpdateOrgProfile(ctx, org))

	got, err := st.GetOrgProfile(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plant trees in every district", got.Mission)
	assert.Equal(t, "hello@greensteps.org", got.ContactEmail)
}

func TestSQLite_OrgProfile_UpdateMissing(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateOrgProfile(context.Background(), &model.OrgProfile{ID: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_Contacts_ReplaceWholesale(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	first, err := st.ReplaceContacts(ctx, company.ID, []model.Contact{
		{Email: "old@acme.com", RoleGuess: model.RoleGeneric, Confidence: 0.2},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := st.ReplaceContacts(ctx, company.ID, []model.Contact{
		{Email: "csr@acme.com", RoleGuess: model.RoleCSR, Confidence: 0.8},
		{Email: "info@acme.com", RoleGuess: model.RoleGeneric, Confidence: 0.4},
	})
	require.NoError(t, err)
	require.Len(t, second, 2)

	got, err := st.ListContacts(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "csr@acme.com", got[0].Email)
	assert.Equal(t, "info@acme.com", got[1].Email)

	// Old contact rows are gone, not merged.
	for _, c := range got {
		assert.NotEqual(t, "old@acme.com", c.Email)
	}
}

func TestSQLite_Contacts_ConfidenceClamped(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	saved, err := st.ReplaceContacts(ctx, company.ID, []model.Contact{
		{Email: "a@acme.com", RoleGuess: model.RoleCSR, Confidence: 1.7},
		{Email: "b@acme.com", RoleGuess: model.RoleUnknown, Confidence: -0.3},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.InDelta(t, 1.0, saved[0].Confidence, 1e-9)
	assert.InDelta(t, 0.0, saved[1].Confidence, 1e-9)
}

func TestSQLite_CompanyProfile_Upsert(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	p1 := &model.CompanyProfile{
		CompanyID: company.ID,
		Summary:   "first pass",
		Sources:   []model.SourceRef{{URL: "https://acme.com/about"}},
	}
	require.NoError(t, st.UpsertCompanyProfile(ctx, p1))

	p2 := &model.CompanyProfile{
		CompanyID: company.ID,
		Summary:   "second pass",
		CSRFocus:  "reforestation",
	}
	require.NoError(t, st.UpsertCompanyProfile(ctx, p2))

	got, err := st.GetCompanyProfile(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "second pass", got.Summary)
	assert.Equal(t, "reforestation", got.CSRFocus)
}

func TestSQLite_Draft_Lifecycle(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	draft := &model.Draft{CompanyID: company.ID, Subject: "Hi", Body: "Body", Language: "vi"}
	require.NoError(t, st.CreateDraft(ctx, draft))
	assert.Equal(t, model.DraftStatusDraft, draft.Status)

	require.NoError(t, st.UpdateDraftStatus(ctx, draft.ID, model.DraftStatusApproved))
	got, err := st.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DraftStatusApproved, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestSQLite_TransitionDraft(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	draft := &model.Draft{CompanyID: company.ID, Subject: "s"}
	require.NoError(t, st.CreateDraft(ctx, draft))

	require.NoError(t, st.TransitionDraft(ctx, draft.ID, model.DraftStatusDraft, model.DraftStatusApproved))
	got, err := st.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DraftStatusApproved, got.Status)

	// A stale transition does not move the draft and names its real status.
	err = st.TransitionDraft(ctx, draft.ID, model.DraftStatusDraft, model.DraftStatusApproved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is approved, not draft")

	// A draft claimed by a worker cannot be re-approved over its claim.
	claimed, err := st.ClaimNextApproved(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	err = st.TransitionDraft(ctx, draft.ID, model.DraftStatusDraft, model.DraftStatusApproved)
	require.Error(t, err)
	got, err = st.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DraftStatusSending, got.Status)

	err = st.TransitionDraft(ctx, "missing", model.DraftStatusDraft, model.DraftStatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_ClaimNextApproved(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	// Empty queue.
	claimed, err := st.ClaimNextApproved(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)

	older := &model.Draft{CompanyID: company.ID, Subject: "older"}
	require.NoError(t, st.CreateDraft(ctx, older))
	require.NoError(t, st.UpdateDraftStatus(ctx, older.ID, model.DraftStatusApproved))

	time.Sleep(5 * time.Millisecond)

	newer := &model.Draft{CompanyID: company.ID, Subject: "newer"}
	require.NoError(t, st.CreateDraft(ctx, newer))
	require.NoError(t, st.UpdateDraftStatus(ctx, newer.ID, model.DraftStatusApproved))

	claimed, err = st.ClaimNextApproved(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, older.ID, claimed.ID)
	assert.Equal(t, model.DraftStatusSending, claimed.Status)

	// A draft in sending is not claimable again.
	claimed2, err := st.ClaimNextApproved(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed2)
	assert.Equal(t, newer.ID, claimed2.ID)

	claimed3, err := st.ClaimNextApproved(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed3)
}

func TestSQLite_ListDrafts_Filters(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	campaign, company := seedCampaign(t, st)

	d1 := &model.Draft{CompanyID: company.ID, Subject: "one"}
	require.NoError(t, st.CreateDraft(ctx, d1))
	d2 := &model.Draft{CompanyID: company.ID, Subject: "two"}
	require.NoError(t, st.CreateDraft(ctx, d2))
	require.NoError(t, st.UpdateDraftStatus(ctx, d2.ID, model.DraftStatusApproved))

	byStatus, err := st.ListDrafts(ctx, DraftFilter{Status: model.DraftStatusApproved})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, d2.ID, byStatus[0].ID)

	byCampaign, err := st.ListDrafts(ctx, DraftFilter{CampaignID: campaign.ID})
	require.NoError(t, err)
	assert.Len(t, byCampaign, 2)

	byCompany, err := st.ListDrafts(ctx, DraftFilter{CompanyID: company.ID, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, byCompany, 1)

	none, err := st.ListDrafts(ctx, DraftFilter{CampaignID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_SendAttempts_AppendOnly(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()
	_, company := seedCampaign(t, st)

	draft := &model.Draft{CompanyID: company.ID, Subject: "s"}
	require.NoError(t, st.CreateDraft(ctx, draft))

	require.NoError(t, st.CreateSendAttempt(ctx, &model.SendAttempt{
		DraftID: draft.ID, Status: model.AttemptStatusFailed, Provider: "smtp", Error: "boom",
	}))
	require.NoError(t, st.CreateSendAttempt(ctx, &model.SendAttempt{
		DraftID: draft.ID, Status: model.AttemptStatusSent, Provider: "smtp",
	}))

	got, err := st.ListSendAttempts(ctx, draft.ID, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	all, err := st.ListSendAttempts(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	limited, err := st.ListSendAttempts(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
