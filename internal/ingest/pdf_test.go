package ingest

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePdfToText writes a shell script that prints fixed text and counts its
// invocations, standing in for the real binary.
func fakePdfToText(t *testing.T) (binPath, countPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub not supported on windows")
	}

	dir := t.TempDir()
	countPath = filepath.Join(dir, "count")
	binPath = filepath.Join(dir, "pdftotext")
	script := "#!/bin/sh\necho run >> " + countPath + "\necho extracted proposal text\n"
	require.NoError(t, os.WriteFile(binPath, []byte(script), 0o755))
	return binPath, countPath
}

func invocations(t *testing.T, countPath string) int {
	t.Helper()
	data, err := os.ReadFile(countPath)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	return n
}

func TestGetOrExtractCachesByContent(t *testing.T) {
	bin, count := fakePdfToText(t)
	p := NewPDFExtractor(bin, 40)
	ctx := context.Background()

	doc := []byte("%PDF-1.4 fake")
	first := p.GetOrExtract(ctx, doc)
	assert.Equal(t, "extracted proposal text", first)
	assert.Equal(t, 1, invocations(t, count))

	// Same bytes hit the cache.
	second := p.GetOrExtract(ctx, doc)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, invocations(t, count))

	// Different bytes extract again.
	p.GetOrExtract(ctx, []byte("%PDF-1.4 other"))
	assert.Equal(t, 2, invocations(t, count))
}

func TestExtractFileMissing(t *testing.T) {
	p := NewPDFExtractor("pdftotext", 40)
	assert.Empty(t, p.ExtractFile(context.Background(), filepath.Join(t.TempDir(), "nope.pdf")))
}

func TestExtractDegradesOnMissingBinary(t *testing.T) {
	p := NewPDFExtractor(filepath.Join(t.TempDir(), "no-such-binary"), 40)
	assert.Empty(t, p.GetOrExtract(context.Background(), []byte("%PDF-1.4")))
}
