package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool used by PostgresStore. pgxmock
// satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS org_profiles (
	id                TEXT PRIMARY KEY,
	org_name          TEXT NOT NULL DEFAULT '',
	org_website       TEXT NOT NULL DEFAULT '',
	contact_name      TEXT NOT NULL DEFAULT '',
	contact_email     TEXT NOT NULL DEFAULT '',
	contact_phone     TEXT NOT NULL DEFAULT '',
	mission           TEXT NOT NULL DEFAULT '',
	programs          TEXT NOT NULL DEFAULT '',
	event_summary     TEXT NOT NULL DEFAULT '',
	sponsorship_ask   TEXT NOT NULL DEFAULT '',
	sponsorship_tiers TEXT NOT NULL DEFAULT '',
	audience          TEXT NOT NULL DEFAULT '',
	impact_metrics    TEXT NOT NULL DEFAULT '',
	raw_proposal_text TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS campaigns (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	org_profile_id TEXT REFERENCES org_profiles(id),
	attachments    JSONB NOT NULL DEFAULT '[]',
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS companies (
	id          TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	name        TEXT NOT NULL,
	website     TEXT NOT NULL DEFAULT '',
	industry    TEXT NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS company_profiles (
	id                 TEXT PRIMARY KEY,
	company_id         TEXT NOT NULL UNIQUE REFERENCES companies(id),
	summary            TEXT NOT NULL DEFAULT '',
	mission_values     TEXT NOT NULL DEFAULT '',
	csr_focus          TEXT NOT NULL DEFAULT '',
	recent_initiatives TEXT NOT NULL DEFAULT '',
	alignment_angles   TEXT NOT NULL DEFAULT '',
	sources            JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS contacts (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL REFERENCES companies(id),
	email      TEXT NOT NULL,
	found_on   TEXT NOT NULL DEFAULT '',
	role_guess TEXT NOT NULL DEFAULT 'unknown',
	confidence DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS drafts (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL REFERENCES companies(id),
	contact_id TEXT REFERENCES contacts(id),
	subject    TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL DEFAULT '',
	language   TEXT NOT NULL DEFAULT 'vi',
	notes      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'draft',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS send_attempts (
	id                  TEXT PRIMARY KEY,
	draft_id            TEXT NOT NULL REFERENCES drafts(id),
	status              TEXT NOT NULL,
	provider            TEXT NOT NULL DEFAULT '',
	provider_message_id TEXT NOT NULL DEFAULT '',
	error               TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_companies_campaign_id ON companies(campaign_id);
CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id);
CREATE INDEX IF NOT EXISTS idx_drafts_company_id ON drafts(company_id);
CREATE INDEX IF NOT EXISTS idx_drafts_status ON drafts(status);
CREATE INDEX IF NOT EXISTS idx_send_attempts_draft_id ON send_attempts(draft_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Campaigns

func (s *PostgresStore) CreateCampaign(ctx context.Context, c *model.Campaign) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	attachJSON, err := json.Marshal(c.Attachments)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal attachments")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO campaigns (id, name, org_profile_id, attachments, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, nullable(c.OrgProfileID), string(attachJSON), c.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert campaign")
}

func (s *PostgresStore) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, org_profile_id, attachments, created_at FROM campaigns WHERE id = $1`, id)
	return scanCampaignPG(row)
}

func (s *PostgresStore) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, org_profile_id, attachments, created_at FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list campaigns")
	}
	defer rows.Close()

	var out []model.Campaign
	for rows.Next() {
		c, err := scanCampaignPG(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list campaigns iterate")
}

// Org profiles

func (s *PostgresStore) CreateOrgProfile(ctx context.Context, o *model.OrgProfile) error {
	o.ID = uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO org_profiles (id, org_name, org_website, contact_name, contact_email, contact_phone,
			mission, programs, event_summary, sponsorship_ask, sponsorship_tiers, audience, impact_metrics, raw_proposal_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.OrgName, o.OrgWebsite, o.ContactName, o.ContactEmail, o.ContactPhone,
		o.Mission, o.Programs, o.EventSummary, o.SponsorshipAsk, o.SponsorshipTiers,
		o.Audience, o.ImpactMetrics, o.RawProposalText,
	)
	return eris.Wrap(err, "postgres: insert org profile")
}

func (s *PostgresStore) GetOrgProfile(ctx context.Context, id string) (*model.OrgProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, org_name, org_website, contact_name, contact_email, contact_phone,
			mission, programs, event_summary, sponsorship_ask, sponsorship_tiers, audience, impact_metrics, raw_proposal_text
		 FROM org_profiles WHERE id = $1`, id)

	var o model.OrgProfile
	err := row.Scan(&o.ID, &o.OrgName, &o.OrgWebsite, &o.ContactName, &o.ContactEmail, &o.ContactPhone,
		&o.Mission, &o.Programs, &o.EventSummary, &o.SponsorshipAsk, &o.SponsorshipTiers,
		&o.Audience, &o.ImpactMetrics, &o.RawProposalText)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: org profile")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan org profile")
	}
	return &o, nil
}

func (s *PostgresStore) UpdateOrgProfile(ctx context.Context, o *model.OrgProfile) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE org_profiles SET org_name = $1, org_website = $2, contact_name = $3, contact_email = $4, contact_phone = $5,
			mission = $6, programs = $7, event_summary = $8, sponsorship_ask = $9, sponsorship_tiers = $10,
			audience = $11, impact_metrics = $12, raw_proposal_text = $13
		 WHERE id = $14`,
		o.OrgName, o.OrgWebsite, o.ContactName, o.ContactEmail, o.ContactPhone,
		o.Mission, o.Programs, o.EventSummary, o.SponsorshipAsk, o.SponsorshipTiers,
		o.Audience, o.ImpactMetrics, o.RawProposalText, o.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update org profile %s", o.ID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "org profile %s", o.ID)
	}
	return nil
}

// Companies

func (s *PostgresStore) CreateCompany(ctx context.Context, c *model.Company) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO companies (id, campaign_id, name, website, industry, notes, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CampaignID, c.Name, c.Website, c.Industry, c.Notes, c.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert company")
}

func (s *PostgresStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, campaign_id, name, website, industry, notes, created_at FROM companies WHERE id = $1`, id)

	var c model.Company
	err := row.Scan(&c.ID, &c.CampaignID, &c.Name, &c.Website, &c.Industry, &c.Notes, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: company")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan company")
	}
	return &c, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context, campaignID string) ([]model.Company, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, campaign_id, name, website, industry, notes, created_at
		 FROM companies WHERE campaign_id = $1 ORDER BY created_at ASC`, campaignID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list companies")
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.CampaignID, &c.Name, &c.Website, &c.Industry, &c.Notes, &c.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan company")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list companies iterate")
}

// Company profiles

func (s *PostgresStore) UpsertCompanyProfile(ctx context.Context, p *model.CompanyProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	sourcesJSON, err := json.Marshal(p.Sources)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal sources")
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO company_profiles (id, company_id, summary, mission_values, csr_focus, recent_initiatives, alignment_angles, sources)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (company_id) DO UPDATE SET
			summary = EXCLUDED.summary,
			mission_values = EXCLUDED.mission_values,
			csr_focus = EXCLUDED.csr_focus,
			recent_initiatives = EXCLUDED.recent_initiatives,
			alignment_angles = EXCLUDED.alignment_angles,
			sources = EXCLUDED.sources`,
		p.ID, p.CompanyID, p.Summary, p.MissionValues, p.CSRFocus, p.RecentInitiatives, p.AlignmentAngles, string(sourcesJSON),
	)
	return eris.Wrap(err, "postgres: upsert company profile")
}

func (s *PostgresStore) GetCompanyProfile(ctx context.Context, companyID string) (*model.CompanyProfile, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, company_id, summary, mission_values, csr_focus, recent_initiatives, alignment_angles, sources
		 FROM company_profiles WHERE company_id = $1`, companyID)

	var p model.CompanyProfile
	var sourcesJSON []byte
	err := row.Scan(&p.ID, &p.CompanyID, &p.Summary, &p.MissionValues, &p.CSRFocus,
		&p.RecentInitiatives, &p.AlignmentAngles, &sourcesJSON)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: company profile")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan company profile")
	}
	if err := json.Unmarshal(sourcesJSON, &p.Sources); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal sources")
	}
	return &p, nil
}

// Contacts

func (s *PostgresStore) ReplaceContacts(ctx context.Context, companyID string, cs []model.Contact) ([]model.Contact, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: begin replace contacts")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM contacts WHERE company_id = $1`, companyID); err != nil {
		return nil, eris.Wrap(err, "postgres: delete contacts")
	}

	out := make([]model.Contact, 0, len(cs))
	for _, c := range cs {
		c.ID = uuid.New().String()
		c.CompanyID = companyID
		c.Confidence = clamp01(c.Confidence)
		if _, err := tx.Exec(ctx,
			`INSERT INTO contacts (id, company_id, email, found_on, role_guess, confidence) VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, c.CompanyID, c.Email, c.FoundOn, string(c.RoleGuess), c.Confidence,
		); err != nil {
			return nil, eris.Wrap(err, "postgres: insert contact")
		}
		out = append(out, c)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, eris.Wrap(err, "postgres: commit replace contacts")
	}
	return out, nil
}

func (s *PostgresStore) ListContacts(ctx context.Context, companyID string) ([]model.Contact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_id, email, found_on, role_guess, confidence
		 FROM contacts WHERE company_id = $1 ORDER BY confidence DESC`, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list contacts")
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Email, &c.FoundOn, &c.RoleGuess, &c.Confidence); err != nil {
			return nil, eris.Wrap(err, "postgres: scan contact")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list contacts iterate")
}

func (s *PostgresStore) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, company_id, email, found_on, role_guess, confidence FROM contacts WHERE id = $1`, id)

	var c model.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Email, &c.FoundOn, &c.RoleGuess, &c.Confidence)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: contact")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan contact")
	}
	return &c, nil
}

// Drafts

func (s *PostgresStore) CreateDraft(ctx context.Context, d *model.Draft) error {
	d.ID = uuid.New().String()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Status == "" {
		d.Status = model.DraftStatusDraft
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO drafts (id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.CompanyID, nullable(d.ContactID), d.Subject, d.Body, d.Language, d.Notes, string(d.Status), d.CreatedAt, d.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert draft")
}

func (s *PostgresStore) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at
		 FROM drafts WHERE id = $1`, id)
	return scanDraftPG(row)
}

func (s *PostgresStore) ListDrafts(ctx context.Context, f DraftFilter) ([]model.Draft, error) {
	query := `SELECT d.id, d.company_id, d.contact_id, d.subject, d.body, d.language, d.notes, d.status, d.created_at, d.updated_at
		 FROM drafts d`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CampaignID != "" {
		query += ` JOIN companies c ON c.id = d.company_id WHERE c.campaign_id = ` + arg(f.CampaignID)
	} else {
		query += ` WHERE true`
	}
	if f.CompanyID != "" {
		query += ` AND d.company_id = ` + arg(f.CompanyID)
	}
	if f.Status != "" {
		query += ` AND d.status = ` + arg(string(f.Status))
	}
	query += ` ORDER BY d.created_at DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ` + arg(limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list drafts")
	}
	defer rows.Close()

	var out []model.Draft
	for rows.Next() {
		d, err := scanDraftPG(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list drafts iterate")
}

func (s *PostgresStore) UpdateDraftStatus(ctx context.Context, id string, status model.DraftStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE drafts SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update draft status %s", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(ErrNotFound, "draft %s", id)
	}
	return nil
}

func (s *PostgresStore) TransitionDraft(ctx context.Context, id string, from, to model.DraftStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE drafts SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		string(to), time.Now().UTC(), id, string(from),
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: transition draft %s", id)
	}
	if tag.RowsAffected() == 0 {
		d, err := s.GetDraft(ctx, id)
		if err != nil {
			return err
		}
		return eris.Errorf("draft %s is %s, not %s", id, d.Status, from)
	}
	return nil
}

func (s *PostgresStore) ClaimNextApproved(ctx context.Context) (*model.Draft, error) {
	now := time.Now().UTC()
	row := s.pool.QueryRow(ctx,
		`UPDATE drafts SET status = $1, updated_at = $2
		 WHERE id = (
			SELECT id FROM drafts WHERE status = $3
			ORDER BY updated_at ASC LIMIT 1
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at`,
		string(model.DraftStatusSending), now, string(model.DraftStatusApproved))

	d, err := scanDraftPG(row)
	if eris.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Send attempts

func (s *PostgresStore) CreateSendAttempt(ctx context.Context, a *model.SendAttempt) error {
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO send_attempts (id, draft_id, status, provider, provider_message_id, error, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.DraftID, string(a.Status), a.Provider, a.ProviderMessageID, a.Error, a.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert send attempt")
}

func (s *PostgresStore) ListSendAttempts(ctx context.Context, draftID string, limit int) ([]model.SendAttempt, error) {
	query := `SELECT id, draft_id, status, provider, provider_message_id, error, created_at FROM send_attempts`
	var args []any
	if draftID != "" {
		args = append(args, draftID)
		query += ` WHERE draft_id = $1`
	}
	query += ` ORDER BY created_at DESC`
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list send attempts")
	}
	defer rows.Close()

	var out []model.SendAttempt
	for rows.Next() {
		var a model.SendAttempt
		if err := rows.Scan(&a.ID, &a.DraftID, &a.Status, &a.Provider, &a.ProviderMessageID, &a.Error, &a.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan send attempt")
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list send attempts iterate")
}

// helpers

type pgScannable interface {
	Scan(dest ...any) error
}

func scanCampaignPG(row pgScannable) (*model.Campaign, error) {
	var c model.Campaign
	var orgID *string
	var attachJSON []byte
	err := row.Scan(&c.ID, &c.Name, &orgID, &attachJSON, &c.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: campaign")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan campaign")
	}
	if orgID != nil {
		c.OrgProfileID = *orgID
	}
	if err := json.Unmarshal(attachJSON, &c.Attachments); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal attachments")
	}
	return &c, nil
}

func scanDraftPG(row pgScannable) (*model.Draft, error) {
	var d model.Draft
	var contactID *string
	err := row.Scan(&d.ID, &d.CompanyID, &contactID, &d.Subject, &d.Body, &d.Language, &d.Notes, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "postgres: draft")
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan draft")
	}
	if contactID != nil {
		d.ContactID = *contactID
	}
	return &d, nil
}
