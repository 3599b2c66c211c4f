package worker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sponsorlane/outreach-cli/internal/config"
	"github.com/sponsorlane/outreach-cli/internal/mailer"
	"github.com/sponsorlane/outreach-cli/internal/model"
	"github.com/sponsorlane/outreach-cli/internal/store"
)

// maxErrorLen caps the error text persisted on a send attempt.
const maxErrorLen = 500

// Worker drains approved drafts one at a time: claim, resolve recipient,
// deliver, record the outcome. Every terminal transition is paired with
// exactly one send attempt. Drafts are never retried automatically; a
// failed draft needs an explicit re-approval.
type Worker struct {
	store  store.Store
	sender mailer.Sender
	cfg    config.WorkerConfig

	out   io.Writer
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Worker writing progress lines to out.
func New(st store.Store, sender mailer.Sender, cfg config.WorkerConfig, out io.Writer) *Worker {
	return &Worker{
		store:  st,
		sender: sender,
		cfg:    cfg,
		out:    out,
		sleep:  sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Run processes the queue until ctx is canceled. With once set it returns
// after processing at most one draft, or immediately when the queue is
// empty.
func (w *Worker) Run(ctx context.Context, once bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		draft, err := w.store.ClaimNextApproved(ctx)
		if err != nil {
			return eris.Wrap(err, "worker: claim draft")
		}
		if draft == nil {
			if once {
				return nil
			}
			if err := w.sleep(ctx, w.cfg.PollInterval()); err != nil {
				return err
			}
			continue
		}

		outcome := w.process(ctx, draft)
		switch outcome {
		case outcomeSent:
			if err := w.sleep(ctx, w.cfg.RateLimit()); err != nil {
				return err
			}
		case outcomeSendFailed:
			if err := w.sleep(ctx, w.cfg.FailBackoff()); err != nil {
				return err
			}
		case outcomeNoRecipient:
			// No SMTP interaction happened, so no pacing is needed. The
			// queue drains misconfigured drafts immediately.
		}
		if once {
			return nil
		}
	}
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeSendFailed
	outcomeNoRecipient
)

// process delivers one claimed draft and records its terminal state.
func (w *Worker) process(ctx context.Context, draft *model.Draft) outcome {
	company, companyName := w.companyFor(ctx, draft)

	if draft.ContactID == "" {
		w.fail(ctx, draft, companyName, "", "No recipient email selected")
		return outcomeNoRecipient
	}
	contact, err := w.store.GetContact(ctx, draft.ContactID)
	if err != nil {
		w.fail(ctx, draft, companyName, "", fmt.Sprintf("load contact: %v", err))
		return outcomeNoRecipient
	}

	msg := &mailer.Message{
		To:      contact.Email,
		Subject: draft.Subject,
		Body:    draft.Body,
	}
	if company != nil {
		msg.Attachments = w.attachmentsFor(ctx, company)
	}

	messageID, err := w.sender.Send(ctx, msg)
	if err != nil {
		w.fail(ctx, draft, companyName, contact.Email, eris.ToString(err, false))
		return outcomeSendFailed
	}

	attempt := &model.SendAttempt{
		DraftID:           draft.ID,
		Status:            model.AttemptStatusSent,
		Provider:          "smtp",
		ProviderMessageID: messageID,
	}
	if err := w.store.CreateSendAttempt(ctx, attempt); err != nil {
		zap.L().Error("worker: record sent attempt", zap.String("draft", draft.ID), zap.Error(err))
	}
	if err := w.store.UpdateDraftStatus(ctx, draft.ID, model.DraftStatusSent); err != nil {
		zap.L().Error("worker: mark draft sent", zap.String("draft", draft.ID), zap.Error(err))
	}
	fmt.Fprintf(w.out, "[SENT] %s -> %s | subject=%s\n", companyName, contact.Email, draft.Subject)
	return outcomeSent
}

// fail records a failed attempt and moves the draft to failed.
func (w *Worker) fail(ctx context.Context, draft *model.Draft, companyName, email, errText string) {
	if len(errText) > maxErrorLen {
		errText = errText[:maxErrorLen]
	}
	attempt := &model.SendAttempt{
		DraftID:  draft.ID,
		Status:   model.AttemptStatusFailed,
		Provider: "smtp",
		Error:    errText,
	}
	if err := w.store.CreateSendAttempt(ctx, attempt); err != nil {
		zap.L().Error("worker: record failed attempt", zap.String("draft", draft.ID), zap.Error(err))
	}
	if err := w.store.UpdateDraftStatus(ctx, draft.ID, model.DraftStatusFailed); err != nil {
		zap.L().Error("worker: mark draft failed", zap.String("draft", draft.ID), zap.Error(err))
	}
	fmt.Fprintf(w.out, "[FAILED] %s -> %s: %s\n", companyName, email, errText)
}

func (w *Worker) companyFor(ctx context.Context, draft *model.Draft) (*model.Company, string) {
	company, err := w.store.GetCompany(ctx, draft.CompanyID)
	if err != nil {
		zap.L().Warn("worker: load company", zap.String("draft", draft.ID), zap.Error(err))
		return nil, draft.CompanyID
	}
	return company, company.Name
}

// attachmentsFor resolves the campaign-level attachment paths for a draft's
// company. A lookup failure just drops the attachments.
func (w *Worker) attachmentsFor(ctx context.Context, company *model.Company) []string {
	campaign, err := w.store.GetCampaign(ctx, company.CampaignID)
	if err != nil {
		zap.L().Warn("worker: load campaign for attachments",
			zap.String("company", company.ID), zap.Error(err))
		return nil
	}
	return campaign.Attachments
}
