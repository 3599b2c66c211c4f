package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// PDFExtractor extracts text from proposal PDFs using the pdftotext CLI
// tool. Extraction degrades to an empty string on any failure (missing
// binary, corrupt file) so campaign setup can continue with manual entry.
type PDFExtractor struct {
	binPath  string
	maxPages int

	mu    sync.Mutex
	cache map[string]string // sha256 of document bytes -> extracted text
}

// NewPDFExtractor creates a PDFExtractor. An empty binPath defaults to
// "pdftotext"; a non-positive maxPages extracts the whole document.
func NewPDFExtractor(binPath string, maxPages int) *PDFExtractor {
	if binPath == "" {
		binPath = "pdftotext"
	}
	return &PDFExtractor{
		binPath:  binPath,
		maxPages: maxPages,
		cache:    make(map[string]string),
	}
}

// GetOrExtract returns the text for the given document bytes, extracting on
// first sight and serving repeats from the content-addressed cache.
func (p *PDFExtractor) GetOrExtract(ctx context.Context, pdfBytes []byte) string {
	sum := sha256.Sum256(pdfBytes)
	key := hex.EncodeToString(sum[:])

	p.mu.Lock()
	if text, ok := p.cache[key]; ok {
		p.mu.Unlock()
		return text
	}
	p.mu.Unlock()

	text := p.extract(ctx, pdfBytes)

	p.mu.Lock()
	p.cache[key] = text
	p.mu.Unlock()
	return text
}

// ExtractFile reads and extracts a PDF from disk through the cache.
func (p *PDFExtractor) ExtractFile(ctx context.Context, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		zap.L().Warn("ingest: read pdf failed", zap.String("path", path), zap.Error(err))
		return ""
	}
	return p.GetOrExtract(ctx, data)
}

func (p *PDFExtractor) extract(ctx context.Context, pdfBytes []byte) string {
	tmp, err := os.CreateTemp("", "proposal-*.pdf")
	if err != nil {
		zap.L().Warn("ingest: create temp pdf failed", zap.Error(err))
		return ""
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(pdfBytes); err != nil {
		_ = tmp.Close()
		zap.L().Warn("ingest: write temp pdf failed", zap.Error(err))
		return ""
	}
	_ = tmp.Close()

	args := []string{"-layout"}
	if p.maxPages > 0 {
		args = append(args, "-l", strconv.Itoa(p.maxPages))
	}
	args = append(args, filepath.Clean(tmp.Name()), "-")

	cmd := exec.CommandContext(ctx, p.binPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		zap.L().Warn("ingest: pdftotext failed",
			zap.String("stderr", stderr.String()), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(stdout.String())
}
