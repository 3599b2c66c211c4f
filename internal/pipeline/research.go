package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/config"
	"github.com/sponsorlane/outreach-cli/internal/contacts"
	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/research"
	"github.com/sponsorlane/outreach-cli/internal/store"
	"github.com/sponsorlane/outreach-cli/internal/writer"
	"github.com/sponsorlane/outreach-cli/pkg/llm"
)

// Runner executes the research phase for a campaign: fetch key pages,
// extract and rank contacts, summarize a company profile, and compose a
// draft per company. Companies are processed sequentially; one company's
// failure never aborts the run.
type Runner struct {
	store      store.Store
	llm        llm.Client
	fetcher    *research.Fetcher
	profiler   *research.Profiler
	classifier contacts.Classifier
	research   config.ResearchConfig
	language   string
	limit      int
}

// Option adjusts a Runner beyond its configuration defaults.
type Option func(*Runner)

// WithLimit caps how many companies a Run processes. Zero means all.
func WithLimit(n int) Option {
	return func(r *Runner) { r.limit = n }
}

// WithLanguage overrides the configured default language for this run.
func WithLanguage(lang string) Option {
	return func(r *Runner) {
		if lang != "" {
			r.language = lang
		}
	}
}

// NewRunner wires a Runner from configuration.
func NewRunner(st store.Store, client llm.Client, cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		store:      st,
		llm:        client,
		fetcher:    research.NewFetcher(time.Duration(cfg.Research.FetchTimeoutSecs)*time.Second, cfg.Research.FetchRatePerSec),
		profiler:   research.NewProfiler(client),
		classifier: contacts.Classifier{LocalPartOnly: cfg.Contacts.LocalPartOnly},
		research:   cfg.Research,
		language:   cfg.Defaults.Language,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CompanyResult summarizes one company's research outcome.
type CompanyResult struct {
	CompanyID   string
	CompanyName string
	PagesUsed   int
	Contacts    []model.Contact
	DraftID     string
	Recipient   string
	Err         error
}

// Run researches every company in the campaign and returns per-company
// results in campaign order.
func (r *Runner) Run(ctx context.Context, campaignID string) ([]CompanyResult, error) {
	campaign, err := r.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: load campaign %s", campaignID)
	}

	var org *model.OrgProfile
	if campaign.OrgProfileID != "" {
		org, err = r.store.GetOrgProfile(ctx, campaign.OrgProfileID)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: load org profile %s", campaign.OrgProfileID)
		}
	} else {
		org = &model.OrgProfile{}
	}

	companies, err := r.store.ListCompanies(ctx, campaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: list companies for %s", campaignID)
	}
	if r.limit > 0 && len(companies) > r.limit {
		companies = companies[:r.limit]
	}

	results := make([]CompanyResult, 0, len(companies))
	for i := range companies {
		res := r.ResearchCompany(ctx, org, &companies[i])
		if res.Err != nil {
			zap.L().Warn("pipeline: company research failed",
				zap.String("company", companies[i].Name), zap.Error(res.Err))
		}
		results = append(results, res)
	}
	return results, nil
}

// ResearchCompany runs the full per-company flow: pages, contacts, profile,
// brief, draft. Fetch failures are skipped per URL; persistence failures
// abort the company and are reported in the result.
func (r *Runner) ResearchCompany(ctx context.Context, org *model.OrgProfile, company *model.Company) CompanyResult {
	res := CompanyResult{CompanyID: company.ID, CompanyName: company.Name}

	pages := r.fetchPages(ctx, company)
	res.PagesUsed = len(pages)

	ranked := r.classifier.FromPages(pages)
	picked := contacts.PickTop(ranked, r.research.MaxContacts)

	candidates := make([]model.Contact, 0, len(picked))
	for _, c := range picked {
		candidates = append(candidates, model.Contact{
			Email:      c.Email,
			FoundOn:    c.FoundOn,
			RoleGuess:  c.RoleGuess,
			Confidence: c.Confidence,
		})
	}
	saved, err := r.store.ReplaceContacts(ctx, company.ID, candidates)
	if err != nil {
		res.Err = eris.Wrap(err, "pipeline: replace contacts")
		return res
	}
	res.Contacts = saved

	// With no usable pages the profile falls back to the imported notes so
	// the brief still has something company-specific to work from.
	profilePages := pages
	if len(profilePages) == 0 && company.Notes != "" {
		profilePages = []model.Page{{URL: company.Website, Text: company.Notes}}
	}
	profile := r.profiler.Summarize(ctx, company.Name, profilePages, r.language)
	profile.CompanyID = company.ID
	if err := r.store.UpsertCompanyProfile(ctx, profile); err != nil {
		res.Err = eris.Wrap(err, "pipeline: upsert company profile")
		return res
	}

	brief := writer.BuildBrief(ctx, r.llm, org.Fields(), profile.Fields(company), r.language)
	subject, body, notes := writer.Compose(ctx, r.llm, org.Fields(), profile.Fields(company), brief, r.language)

	draft := &model.Draft{
		CompanyID: company.ID,
		Subject:   subject,
		Body:      body,
		Language:  r.language,
		Notes:     notes,
		Status:    model.DraftStatusDraft,
	}
	if len(saved) > 0 {
		draft.ContactID = saved[0].ID
		res.Recipient = saved[0].Email
	}
	if err := r.store.CreateDraft(ctx, draft); err != nil {
		res.Err = eris.Wrap(err, "pipeline: create draft")
		return res
	}
	res.DraftID = draft.ID
	return res
}

// fetchPages downloads up to max_pages key pages, skipping failed URLs and
// pages too thin to be useful.
func (r *Runner) fetchPages(ctx context.Context, company *model.Company) []model.Page {
	urls := research.GuessKeyPages(company.Website)
	var pages []model.Page
	for _, u := range urls {
		if len(pages) >= r.research.MaxPages {
			break
		}
		finalURL, text, err := r.fetcher.Fetch(ctx, u)
		if err != nil {
			zap.L().Debug("pipeline: page fetch failed",
				zap.String("url", u), zap.Error(err))
			continue
		}
		if len(text) < r.research.MinPageChars {
			continue
		}
		pages = append(pages, model.Page{URL: finalURL, Text: text})
	}
	return pages
}
