package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sponsorlane/outreach-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
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
	attachments    TEXT NOT NULL DEFAULT '[]',
	created_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS companies (
	id          TEXT PRIMARY KEY,
	campaign_id TEXT NOT NULL REFERENCES campaigns(id),
	name        TEXT NOT NULL,
	website     TEXT NOT NULL DEFAULT '',
	industry    TEXT NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS company_profiles (
	id                 TEXT PRIMARY KEY,
	company_id         TEXT NOT NULL UNIQUE REFERENCES companies(id),
	summary            TEXT NOT NULL DEFAULT '',
	mission_values     TEXT NOT NULL DEFAULT '',
	csr_focus          TEXT NOT NULL DEFAULT '',
	recent_initiatives TEXT NOT NULL DEFAULT '',
	alignment_angles   TEXT NOT NULL DEFAULT '',
	sources            TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS contacts (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL REFERENCES companies(id),
	email      TEXT NOT NULL,
	found_on   TEXT NOT NULL DEFAULT '',
	role_guess TEXT NOT NULL DEFAULT 'unknown',
	confidence REAL NOT NULL DEFAULT 0
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
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS send_attempts (
	id                  TEXT PRIMARY KEY,
	draft_id            TEXT NOT NULL REFERENCES drafts(id),
	status              TEXT NOT NULL,
	provider            TEXT NOT NULL DEFAULT '',
	provider_message_id TEXT NOT NULL DEFAULT '',
	error               TEXT NOT NULL DEFAULT '',
	created_at          DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_companies_campaign_id ON companies(campaign_id);
CREATE INDEX IF NOT EXISTS idx_contacts_company_id ON contacts(company_id);
CREATE INDEX IF NOT EXISTS idx_drafts_company_id ON drafts(company_id);
CREATE INDEX IF NOT EXISTS idx_drafts_status ON drafts(status);
CREATE INDEX IF NOT EXISTS idx_send_attempts_draft_id ON send_attempts(draft_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Campaigns

func (s *SQLiteStore) CreateCampaign(ctx context.Context, c *model.Campaign) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	attachJSON, err := json.Marshal(c.Attachments)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal attachments")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO campaigns (id, name, org_profile_id, attachments, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, nullable(c.OrgProfileID), string(attachJSON), c.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert campaign")
}

func (s *SQLiteStore) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, org_profile_id, attachments, created_at FROM campaigns WHERE id = ?`, id)
	return scanCampaign(row)
}

func (s *SQLiteStore) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, org_profile_id, attachments, created_at FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list campaigns")
	}
	defer rows.Close()

	var out []model.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list campaigns iterate")
}

// Org profiles

func (s *SQLiteStore) CreateOrgProfile(ctx context.Context, o *model.OrgProfile) error {
	o.ID = uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO org_profiles (id, org_name, org_website, contact_name, contact_email, contact_phone,
			mission, programs, event_summary, sponsorship_ask, sponsorship_tiers, audience, impact_metrics, raw_proposal_text)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.OrgName, o.OrgWebsite, o.ContactName, o.ContactEmail, o.ContactPhone,
		o.Mission, o.Programs, o.EventSummary, o.SponsorshipAsk, o.SponsorshipTiers,
		o.Audience, o.ImpactMetrics, o.RawProposalText,
	)
	return eris.Wrap(err, "sqlite: insert org profile")
}

func (s *SQLiteStore) GetOrgProfile(ctx context.Context, id string) (*model.OrgProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, org_name, org_website, contact_name, contact_email, contact_phone,
			mission, programs, event_summary, sponsorship_ask, sponsorship_tiers, audience, impact_metrics, raw_proposal_text
		 FROM org_profiles WHERE id = ?`, id)

	var o model.OrgProfile
	err := row.Scan(&o.ID, &o.OrgName, &o.OrgWebsite, &o.ContactName, &o.ContactEmail, &o.ContactPhone,
		&o.Mission, &o.Programs, &o.EventSummary, &o.SponsorshipAsk, &o.SponsorshipTiers,
		&o.Audience, &o.ImpactMetrics, &o.RawProposalText)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: org profile")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan org profile")
	}
	return &o, nil
}

func (s *SQLiteStore) UpdateOrgProfile(ctx context.Context, o *model.OrgProfile) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE org_profiles SET org_name = ?, org_website = ?, contact_name = ?, contact_email = ?, contact_phone = ?,
			mission = ?, programs = ?, event_summary = ?, sponsorship_ask = ?, sponsorship_tiers = ?,
			audience = ?, impact_metrics = ?, raw_proposal_text = ?
		 WHERE id = ?`,
		o.OrgName, o.OrgWebsite, o.ContactName, o.ContactEmail, o.ContactPhone,
		o.Mission, o.Programs, o.EventSummary, o.SponsorshipAsk, o.SponsorshipTiers,
		o.Audience, o.ImpactMetrics, o.RawProposalText, o.ID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update org profile %s", o.ID)
	}
	return checkRowsAffected(res, "org profile", o.ID)
}

// Companies

func (s *SQLiteStore) CreateCompany(ctx context.Context, c *model.Company) error {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (id, campaign_id, name, website, industry, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CampaignID, c.Name, c.Website, c.Industry, c.Notes, c.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert company")
}

func (s *SQLiteStore) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, campaign_id, name, website, industry, notes, created_at FROM companies WHERE id = ?`, id)
	return scanCompany(row)
}

func (s *SQLiteStore) ListCompanies(ctx context.Context, campaignID string) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, campaign_id, name, website, industry, notes, created_at
		 FROM companies WHERE campaign_id = ? ORDER BY created_at ASC`, campaignID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list companies")
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list companies iterate")
}

// Company profiles

func (s *SQLiteStore) UpsertCompanyProfile(ctx context.Context, p *model.CompanyProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	sourcesJSON, err := json.Marshal(p.Sources)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal sources")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO company_profiles (id, company_id, summary, mission_values, csr_focus, recent_initiatives, alignment_angles, sources)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(company_id) DO UPDATE SET
			summary = excluded.summary,
			mission_values = excluded.mission_values,
			csr_focus = excluded.csr_focus,
			recent_initiatives = excluded.recent_initiatives,
			alignment_angles = excluded.alignment_angles,
			sources = excluded.sources`,
		p.ID, p.CompanyID, p.Summary, p.MissionValues, p.CSRFocus, p.RecentInitiatives, p.AlignmentAngles, string(sourcesJSON),
	)
	return eris.Wrap(err, "sqlite: upsert company profile")
}

func (s *SQLiteStore) GetCompanyProfile(ctx context.Context, companyID string) (*model.CompanyProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, summary, mission_values, csr_focus, recent_initiatives, alignment_angles, sources
		 FROM company_profiles WHERE company_id = ?`, companyID)

	var p model.CompanyProfile
	var sourcesJSON string
	err := row.Scan(&p.ID, &p.CompanyID, &p.Summary, &p.MissionValues, &p.CSRFocus,
		&p.RecentInitiatives, &p.AlignmentAngles, &sourcesJSON)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: company profile")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan company profile")
	}
	if err := json.Unmarshal([]byte(sourcesJSON), &p.Sources); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal sources")
	}
	return &p, nil
}

// Contacts

func (s *SQLiteStore) ReplaceContacts(ctx context.Context, companyID string, cs []model.Contact) ([]model.Contact, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: begin replace contacts")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE company_id = ?`, companyID); err != nil {
		return nil, eris.Wrap(err, "sqlite: delete contacts")
	}

	out := make([]model.Contact, 0, len(cs))
	for _, c := range cs {
		c.ID = uuid.New().String()
		c.CompanyID = companyID
		c.Confidence = clamp01(c.Confidence)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (id, company_id, email, found_on, role_guess, confidence) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.CompanyID, c.Email, c.FoundOn, string(c.RoleGuess), c.Confidence,
		); err != nil {
			return nil, eris.Wrap(err, "sqlite: insert contact")
		}
		out = append(out, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "sqlite: commit replace contacts")
	}
	return out, nil
}

func (s *SQLiteStore) ListContacts(ctx context.Context, companyID string) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_id, email, found_on, role_guess, confidence
		 FROM contacts WHERE company_id = ? ORDER BY confidence DESC`, companyID)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list contacts")
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Email, &c.FoundOn, &c.RoleGuess, &c.Confidence); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan contact")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list contacts iterate")
}

func (s *SQLiteStore) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, email, found_on, role_guess, confidence FROM contacts WHERE id = ?`, id)

	var c model.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Email, &c.FoundOn, &c.RoleGuess, &c.Confidence)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: contact")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan contact")
	}
	return &c, nil
}

// Drafts

func (s *SQLiteStore) CreateDraft(ctx context.Context, d *model.Draft) error {
	d.ID = uuid.New().String()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Status == "" {
		d.Status = model.DraftStatusDraft
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.CompanyID, nullable(d.ContactID), d.Subject, d.Body, d.Language, d.Notes, string(d.Status), d.CreatedAt, d.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert draft")
}

func (s *SQLiteStore) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at
		 FROM drafts WHERE id = ?`, id)
	return scanDraft(row)
}

func (s *SQLiteStore) ListDrafts(ctx context.Context, f DraftFilter) ([]model.Draft, error) {
	query := `SELECT d.id, d.company_id, d.contact_id, d.subject, d.body, d.language, d.notes, d.status, d.created_at, d.updated_at
		 FROM drafts d`
	var args []any

	if f.CampaignID != "" {
		query += ` JOIN companies c ON c.id = d.company_id WHERE c.campaign_id = ?`
		args = append(args, f.CampaignID)
	} else {
		query += ` WHERE 1=1`
	}
	if f.CompanyID != "" {
		query += ` AND d.company_id = ?`
		args = append(args, f.CompanyID)
	}
	if f.Status != "" {
		query += ` AND d.status = ?`
		args = append(args, string(f.Status))
	}
	query += ` ORDER BY d.created_at DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list drafts")
	}
	defer rows.Close()

	var out []model.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list drafts iterate")
}

func (s *SQLiteStore) UpdateDraftStatus(ctx context.Context, id string, status model.DraftStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE drafts SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update draft status %s", id)
	}
	return checkRowsAffected(res, "draft", id)
}

func (s *SQLiteStore) TransitionDraft(ctx context.Context, id string, from, to model.DraftStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE drafts SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), time.Now().UTC(), id, string(from),
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: transition draft %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: transition rows affected")
	}
	if n == 0 {
		d, err := s.GetDraft(ctx, id)
		if err != nil {
			return err
		}
		return eris.Errorf("draft %s is %s, not %s", id, d.Status, from)
	}
	return nil
}

func (s *SQLiteStore) ClaimNextApproved(ctx context.Context) (*model.Draft, error) {
	for {
		row := s.db.QueryRowContext(ctx,
			`SELECT id, company_id, contact_id, subject, body, language, notes, status, created_at, updated_at
			 FROM drafts WHERE status = ? ORDER BY updated_at ASC LIMIT 1`,
			string(model.DraftStatusApproved))
		d, err := scanDraft(row)
		if eris.Is(err, ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		res, err := s.db.ExecContext(ctx,
			`UPDATE drafts SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
			string(model.DraftStatusSending), now, d.ID, string(model.DraftStatusApproved),
		)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: claim draft %s", d.ID)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: claim rows affected")
		}
		if n == 0 {
			// Lost the race to another worker; pick the next candidate.
			continue
		}

		d.Status = model.DraftStatusSending
		d.UpdatedAt = now
		return d, nil
	}
}

// Send attempts

func (s *SQLiteStore) CreateSendAttempt(ctx context.Context, a *model.SendAttempt) error {
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO send_attempts (id, draft_id, status, provider, provider_message_id, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.DraftID, string(a.Status), a.Provider, a.ProviderMessageID, a.Error, a.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert send attempt")
}

func (s *SQLiteStore) ListSendAttempts(ctx context.Context, draftID string, limit int) ([]model.SendAttempt, error) {
	query := `SELECT id, draft_id, status, provider, provider_message_id, error, created_at FROM send_attempts`
	var args []any
	if draftID != "" {
		query += ` WHERE draft_id = ?`
		args = append(args, draftID)
	}
	query += ` ORDER BY created_at DESC`
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list send attempts")
	}
	defer rows.Close()

	var out []model.SendAttempt
	for rows.Next() {
		var a model.SendAttempt
		if err := rows.Scan(&a.ID, &a.DraftID, &a.Status, &a.Provider, &a.ProviderMessageID, &a.Error, &a.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan send attempt")
		}
		out = append(out, a)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list send attempts iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "%s %s", entity, id)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

type scannable interface {
	Scan(dest ...any) error
}

func scanCampaign(row scannable) (*model.Campaign, error) {
	var c model.Campaign
	var orgID sql.NullString
	var attachJSON string
	err := row.Scan(&c.ID, &c.Name, &orgID, &attachJSON, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: campaign")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan campaign")
	}
	c.OrgProfileID = orgID.String
	if err := json.Unmarshal([]byte(attachJSON), &c.Attachments); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal attachments")
	}
	return &c, nil
}

func scanCompany(row scannable) (*model.Company, error) {
	var c model.Company
	err := row.Scan(&c.ID, &c.CampaignID, &c.Name, &c.Website, &c.Industry, &c.Notes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: company")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan company")
	}
	return &c, nil
}

func scanDraft(row scannable) (*model.Draft, error) {
	var d model.Draft
	var contactID sql.NullString
	err := row.Scan(&d.ID, &d.CompanyID, &contactID, &d.Subject, &d.Body, &d.Language, &d.Notes, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: draft")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan draft")
	}
	d.ContactID = contactID.String
	return &d, nil
}
