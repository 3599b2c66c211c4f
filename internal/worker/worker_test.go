package worker

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsorlane/outreach-cli/internal/config"
	"github.com/sponsorlane/outreach-cli/internal/mailer"
	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/store"
)

// fakeStore is an in-memory Store covering what the worker touches.
type fakeStore struct {
	queue     []*model.Draft
	statuses  map[string]model.DraftStatus
	attempts  []*model.SendAttempt
	contacts  map[string]*model.Contact
	companies map[string]*model.Company
	campaigns map[string]*model.Campaign
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		statuses:  make(map[string]model.DraftStatus),
		contacts:  make(map[string]*model.Contact),
		companies: make(map[string]*model.Company),
		campaigns: make(map[string]*model.Campaign),
	}
}

func (f *fakeStore) ClaimNextApproved(ctx context.Context) (*model.Draft, error) {
	if len(f.queue) == 0 {
		return nil, nil
	}
	d := f.queue[0]
	f.queue = f.queue[1:]
	f.statuses[d.ID] = model.DraftStatusSending
	return d, nil
}

func (f *fakeStore) UpdateDraftStatus(ctx context.Context, id string, status model.DraftStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeStore) CreateSendAttempt(ctx context.Context, a *model.SendAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeStore) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	c, ok := f.contacts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

// Unused parts of the interface.
func (f *fakeStore) CreateCampaign(context.Context, *model.Campaign) error { return nil }
func (f *fakeStore) ListCampaigns(context.Context) ([]model.Campaign, error) {
	return nil, nil
}
func (f *fakeStore) CreateOrgProfile(context.Context, *model.OrgProfile) error { return nil }
func (f *fakeStore) GetOrgProfile(context.Context, string) (*model.OrgProfile, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) UpdateOrgProfile(context.Context, *model.OrgProfile) error { return nil }
func (f *fakeStore) CreateCompany(context.Context, *model.Company) error       { return nil }
func (f *fakeStore) ListCompanies(context.Context, string) ([]model.Company, error) {
	return nil, nil
}
func (f *fakeStore) UpsertCompanyProfile(context.Context, *model.CompanyProfile) error { return nil }
func (f *fakeStore) GetCompanyProfile(context.Context, string) (*model.CompanyProfile, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) ReplaceContacts(context.Context, string, []model.Contact) ([]model.Contact, error) {
	return nil, nil
}
func (f *fakeStore) ListContacts(context.Context, string) ([]model.Contact, error) {
	return nil, nil
}
func (f *fakeStore) CreateDraft(context.Context, *model.Draft) error { return nil }
func (f *fakeStore) GetDraft(context.Context, string) (*model.Draft, error) {
	return nil, store.ErrNotFound
}
func (f *fakeStore) ListDrafts(context.Context, store.DraftFilter) ([]model.Draft, error) {
	return nil, nil
}
func (f *fakeStore) TransitionDraft(context.Context, string, model.DraftStatus, model.DraftStatus) error {
	return nil
}
func (f *fakeStore) ListSendAttempts(context.Context, string, int) ([]model.SendAttempt, error) {
	return nil, nil
}
func (f *fakeStore) Migrate(context.Context) error { return nil }
func (f *fakeStore) Close() error                  { return nil }

type fakeSender struct {
	sendFn func(ctx context.Context, msg *mailer.Message) (string, error)
	sent   []*mailer.Message
}

func (s *fakeSender) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	s.sent = append(s.sent, msg)
	if s.sendFn != nil {
		return s.sendFn(ctx, msg)
	}
	return "", nil
}

func testConfig() config.WorkerConfig {
	return config.WorkerConfig{RateLimitSecs: 60, PollSecs: 5, FailBackoffCapSecs: 30}
}

// newTestWorker wires a worker whose sleeps are recorded instead of slept.
func newTestWorker(st store.Store, sender mailer.Sender) (*Worker, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	var sleeps []time.Duration
	w := New(st, sender, testConfig(), &out)
	w.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return w, &out, &sleeps
}

func seedDraft(st *fakeStore, withContact bool) *model.Draft {
	st.campaigns["camp-1"] = &model.Campaign{ID: "camp-1", Attachments: []string{"deck.pdf"}}
	st.companies["co-1"] = &model.Company{ID: "co-1", CampaignID: "camp-1", Name: "Acme"}
	draft := &model.Draft{ID: "d-1", CompanyID: "co-1", Subject: "Hi Acme", Body: "Body"}
	if withContact {
		st.contacts["ct-1"] = &model.Contact{ID: "ct-1", CompanyID: "co-1", Email: "csr@acme.com"}
		draft.ContactID = "ct-1"
	}
	st.queue = append(st.queue, draft)
	return draft
}

func TestWorkerSendsApprovedDraft(t *testing.T) {
	st := newFakeStore()
	seedDraft(st, true)
	sender := &fakeSender{}
	w, out, sleeps := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "csr@acme.com", sender.sent[0].To)
	assert.Equal(t, []string{"deck.pdf"}, sender.sent[0].Attachments)

	assert.Equal(t, model.DraftStatusSent, st.statuses["d-1"])
	require.Len(t, st.attempts, 1)
	assert.Equal(t, model.AttemptStatusSent, st.attempts[0].Status)
	assert.Equal(t, "smtp", st.attempts[0].Provider)

	assert.Contains(t, out.String(), "[SENT] Acme -> csr@acme.com | subject=Hi Acme")
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 60*time.Second, (*sleeps)[0])
}

func TestWorkerRecordsFailure(t *testing.T) {
	st := newFakeStore()
	seedDraft(st, true)
	sender := &fakeSender{sendFn: func(context.Context, *mailer.Message) (string, error) {
		return "", eris.New("connection refused")
	}}
	w, out, sleeps := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))

	assert.Equal(t, model.DraftStatusFailed, st.statuses["d-1"])
	require.Len(t, st.attempts, 1)
	assert.Equal(t, model.AttemptStatusFailed, st.attempts[0].Status)
	assert.Contains(t, st.attempts[0].Error, "connection refused")

	assert.Contains(t, out.String(), "[FAILED] Acme -> csr@acme.com")
	// Failure backoff is the cap, which is below the rate limit.
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 30*time.Second, (*sleeps)[0])
}

func TestWorkerFailureErrorTruncated(t *testing.T) {
	st := newFakeStore()
	seedDraft(st, true)
	long := strings.Repeat("x", 600)
	sender := &fakeSender{sendFn: func(context.Context, *mailer.Message) (string, error) {
		return "", eris.New(long)
	}}
	w, _, _ := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))

	require.Len(t, st.attempts, 1)
	assert.Len(t, st.attempts[0].Error, maxErrorLen)
}

func TestWorkerFastFailsWithoutRecipient(t *testing.T) {
	st := newFakeStore()
	seedDraft(st, false)
	sender := &fakeSender{}
	w, out, sleeps := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))

	assert.Empty(t, sender.sent)
	assert.Equal(t, model.DraftStatusFailed, st.statuses["d-1"])
	require.Len(t, st.attempts, 1)
	assert.Equal(t, "No recipient email selected", st.attempts[0].Error)
	assert.Contains(t, out.String(), "[FAILED] Acme -> : No recipient email selected")

	// No SMTP interaction, so no pacing sleep.
	assert.Empty(t, *sleeps)
}

func TestWorkerOnceProcessesSingleDraft(t *testing.T) {
	st := newFakeStore()
	seedDraft(st, true)
	st.queue = append(st.queue, &model.Draft{ID: "d-2", CompanyID: "co-1", ContactID: "ct-1", Subject: "Hi again", Body: "Body"})
	sender := &fakeSender{}
	w, _, sleeps := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, model.DraftStatusSent, st.statuses["d-1"])

	// The second draft stays queued for the next invocation.
	require.Len(t, st.queue, 1)
	assert.Equal(t, "d-2", st.queue[0].ID)
	require.Len(t, *sleeps, 1)
}

func TestWorkerOnceEmptyQueueReturns(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{}
	w, _, sleeps := newTestWorker(st, sender)

	require.NoError(t, w.Run(context.Background(), true))
	assert.Empty(t, *sleeps)
	assert.Empty(t, st.attempts)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := New(st, sender, testConfig(), &bytes.Buffer{})
	err := w.Run(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
}
