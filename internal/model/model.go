package model

import "time"

// DraftStatus represents the lifecycle state of an outreach draft.
type DraftStatus string

const (
	DraftStatusDraft    DraftStatus = "draft"
	DraftStatusApproved DraftStatus = "approved"
	DraftStatusSending  DraftStatus = "sending" // claimed by the worker, outcome pending
	DraftStatusSent     DraftStatus = "sent"
	DraftStatusFailed   DraftStatus = "failed"
)

// AttemptStatus is the outcome recorded for a single delivery attempt.
type AttemptStatus string

const (
	AttemptStatusSent   AttemptStatus = "sent"
	AttemptStatusFailed AttemptStatus = "failed"
)

// Role is the functional role guessed for a discovered contact email.
type Role string

const (
	RoleCSR         Role = "csr"
	RolePartnership Role = "partnership"
	RoleMarketing   Role = "marketing"
	RoleGeneric     Role = "generic"
	RoleUnknown     Role = "unknown"
)

// Campaign is one sponsorship-outreach effort: one org profile plus a list
// of target companies.
type Campaign struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OrgProfileID string    `json:"org_profile_id,omitempty"`
	Attachments  []string  `json:"attachments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrgProfile holds the sponsorship-seeking organization's own facts, plus
// the cached raw proposal text used for re-extraction.
type OrgProfile struct {
	ID               string `json:"id"`
	OrgName          string `json:"org_name"`
	OrgWebsite       string `json:"org_website"`
	ContactName      string `json:"contact_name"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	Mission          string `json:"mission"`
	Programs         string `json:"programs"`
	EventSummary     string `json:"event_summary"`
	SponsorshipAsk   string `json:"sponsorship_ask"`
	SponsorshipTiers string `json:"sponsorship_tiers"`
	Audience         string `json:"audience"`
	ImpactMetrics    string `json:"impact_metrics"`
	RawProposalText  string `json:"raw_proposal_text,omitempty"`
}

// Fields returns the profile's email-relevant fields as a key/value map
// suitable for prompt construction and template rendering.
func (o *OrgProfile) Fields() map[string]string {
	return map[string]string{
		"org_name":          o.OrgName,
		"org_website":       o.OrgWebsite,
		"contact_name":      o.ContactName,
		"contact_email":     o.ContactEmail,
		"mission":           o.Mission,
		"programs":          o.Programs,
		"event_summary":     o.EventSummary,
		"sponsorship_ask":   o.SponsorshipAsk,
		"sponsorship_tiers": o.SponsorshipTiers,
		"audience":          o.Audience,
		"impact_metrics":    o.ImpactMetrics,
	}
}

// IsEmpty reports whether the key outreach fields are all blank. Used to
// decide whether an LLM auto-fill pass should run.
func (o *OrgProfile) IsEmpty() bool {
	for _, v := range []string{
		o.OrgName, o.Mission, o.Programs, o.EventSummary, o.SponsorshipAsk, o.Audience,
	} {
		if v != "" {
			return false
		}
	}
	return true
}

// Company is a target company inside a campaign.
type Company struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name"`
	Website    string    `json:"website,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SourceRef cites a page that contributed to a company profile.
type SourceRef struct {
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

// CompanyProfile is the derived research artifact for one company. One per
// company, overwritten on each research run.
type CompanyProfile struct {
	ID                string      `json:"id"`
	CompanyID         string      `json:"company_id"`
	Summary           string      `json:"summary"`
	MissionValues     string      `json:"mission_values"`
	CSRFocus          string      `json:"csr_focus"`
	RecentInitiatives string      `json:"recent_initiatives"`
	AlignmentAngles   string      `json:"alignment_angles"`
	Sources           []SourceRef `json:"sources,omitempty"`
}

// Fields returns the profile plus company identity as a key/value map for
// prompt construction and template rendering.
func (p *CompanyProfile) Fields(c *Company) map[string]string {
	m := map[string]string{
		"summary":            p.Summary,
		"mission_values":     p.MissionValues,
		"csr_focus":          p.CSRFocus,
		"recent_initiatives": p.RecentInitiatives,
		"alignment_angles":   p.AlignmentAngles,
	}
	if c != nil {
		m["name"] = c.Name
		m["website"] = c.Website
		m["industry"] = c.Industry
		m["notes"] = c.Notes
	}
	return m
}

// Contact is a candidate recipient discovered during research. Contacts are
// replaced wholesale on each research run, never merged.
type Contact struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	Email      string  `json:"email"`
	FoundOn    string  `json:"found_on,omitempty"`
	RoleGuess  Role    `json:"role_guess"`
	Confidence float64 `json:"confidence"`
}

// Draft is one generated outreach email awaiting approval and delivery.
type Draft struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"company_id"`
	ContactID string      `json:"contact_id,omitempty"`
	Subject   string      `json:"subject"`
	Body      string      `json:"body"`
	Language  string      `json:"language"`
	Notes     string      `json:"personalization_notes,omitempty"`
	Status    DraftStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SendAttempt is one append-only audit record of a delivery attempt.
type SendAttempt struct {
	ID                string        `json:"id"`
	DraftID           string        `json:"draft_id"`
	Status            AttemptStatus `json:"status"`
	Provider          string        `json:"provider,omitempty"`
	ProviderMessageID string        `json:"provider_message_id,omitempty"`
	Error             string        `json:"error,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Brief is the structured personalization output used to compose the final
// email: angle, CTA, benefits, and subject-line candidates.
type Brief struct {
	CompanyAngle string   `json:"company_angle"`
	WhyMatch     []string `json:"why_match"`
	BestCTA      string   `json:"best_cta"`
	Benefits     []string `json:"benefits"`
	SubjectIdeas []string `json:"subject_ideas"`
}

// Page is one fetched and cleaned company web page.
type Page struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}
