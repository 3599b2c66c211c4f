package mailer

import (
	"bytes"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Message is one outbound outreach email.
type Message struct {
	From        string
	To          string
	Subject     string
	Body        string
	Attachments []string // file paths; missing files are skipped
}

// Build renders the message as a MIME document with a plaintext part and
// one attachment part per existing file.
func Build(msg *Message) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Address: msg.From}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	h.SetSubject(msg.Subject)

	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, eris.Wrap(err, "mailer: create writer")
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, eris.Wrap(err, "mailer: create inline")
	}
	var th mail.InlineHeader
	th.Set("Content-Type", "text/plain; charset=utf-8")
	pw, err := tw.CreatePart(th)
	if err != nil {
		return nil, eris.Wrap(err, "mailer: create text part")
	}
	if _, err := io.WriteString(pw, msg.Body); err != nil {
		return nil, eris.Wrap(err, "mailer: write body")
	}
	_ = pw.Close()
	_ = tw.Close()

	for _, path := range msg.Attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			zap.L().Warn("mailer: skipping missing attachment", zap.String("path", path))
			continue
		}

		ctype := mime.TypeByExtension(filepath.Ext(path))
		if ctype == "" {
			ctype = "application/octet-stream"
		}

		var ah mail.AttachmentHeader
		ah.Set("Content-Type", ctype)
		ah.SetFilename(filepath.Base(path))
		aw, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, eris.Wrap(err, "mailer: create attachment")
		}
		if _, err := aw.Write(data); err != nil {
			return nil, eris.Wrap(err, "mailer: write attachment")
		}
		_ = aw.Close()
	}

	if err := mw.Close(); err != nil {
		return nil, eris.Wrap(err, "mailer: close writer")
	}
	return buf.Bytes(), nil
}
