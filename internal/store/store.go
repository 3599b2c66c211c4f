package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = eris.New("store: not found")

// DraftFilter specifies criteria for listing drafts.
type DraftFilter struct {
	CampaignID string
	CompanyID  string
	Status     model.DraftStatus
	Limit      int
}

// Store defines relational persistence for the outreach entities.
// Relationships are unidirectional foreign keys; reverse lookups are
// explicit queries.
type Store interface {
	// Campaigns
	CreateCampaign(ctx context.Context, c *model.Campaign) error
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)

	// Org profiles (one per campaign, mutable, idempotent to re-fill)
	CreateOrgProfile(ctx context.Context, o *model.OrgProfile) error
	GetOrgProfile(ctx context.Context, id string) (*model.OrgProfile, error)
	UpdateOrgProfile(ctx context.Context, o *model.OrgProfile) error

	// Companies
	CreateCompany(ctx context.Context, c *model.Company) error
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	ListCompanies(ctx context.Context, campaignID string) ([]model.Company, error)

	// Company profiles (one per company, overwritten per research run)
	UpsertCompanyProfile(ctx context.Context, p *model.CompanyProfile) error
	GetCompanyProfile(ctx context.Context, companyID string) (*model.CompanyProfile, error)

	// Contacts (superseded wholesale on re-research)
	ReplaceContacts(ctx context.Context, companyID string, cs []model.Contact) ([]model.Contact, error)
	ListContacts(ctx context.Context, companyID string) ([]model.Contact, error)
	GetContact(ctx context.Context, id string) (*model.Contact, error)

	// Drafts
	CreateDraft(ctx context.Context, d *model.Draft) error
	GetDraft(ctx context.Context, id string) (*model.Draft, error)
	ListDrafts(ctx context.Context, f DraftFilter) ([]model.Draft, error)
	UpdateDraftStatus(ctx context.Context, id string, status model.DraftStatus) error
	// TransitionDraft moves a draft from one status to another in a single
	// conditional update, so it cannot overwrite a concurrent claim. The
	// returned error names the draft's actual status when it is not in from.
	TransitionDraft(ctx context.Context, id string, from, to model.DraftStatus) error
	// ClaimNextApproved atomically moves the oldest-updated approved draft
	// to sending and returns it. Returns (nil, nil) when the queue is
	// empty.
	ClaimNextApproved(ctx context.Context) (*model.Draft, error)

	// Send attempts (append-only)
	CreateSendAttempt(ctx context.Context, a *model.SendAttempt) error
	ListSendAttempts(ctx context.Context, draftID string, limit int) ([]model.SendAttempt, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
