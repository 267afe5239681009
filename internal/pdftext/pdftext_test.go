package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses space runs",
			in:   "LICENSOR:    Sony  Pictures\tEntertainment",
			want: "LICENSOR: Sony Pictures Entertainment",
		},
		{
			name: "strips control characters",
			in:   "Term:\x00\x01 5 years\x0c",
			want: "Term: 5 years",
		},
		{
			name: "collapses blank line stretches",
			in:   "Clause 1\n\n\n\n\nClause 2",
			want: "Clause 1\n\nClause 2",
		},
		{
			name: "trims edges",
			in:   "\n\n  body  \n\n",
			want: "body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestExtractTextFromPlainFile(t *testing.T) {
	dir := t.TempDir()
	body := strings.Repeat("RIGHTS LICENSING AGREEMENT between Sony and Zee. ", 10)
	path := filepath.Join(dir, "agreement.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	e := NewCommandExtractor("", nil)
	text, err := e.ExtractText(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, text, "RIGHTS LICENSING AGREEMENT")
	assert.GreaterOrEqual(t, len(text), MinTextLength)
}

func TestExtractTextRejectsShortDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o644))

	e := NewCommandExtractor("", nil)
	_, err := e.ExtractText(context.Background(), path)
	assert.ErrorIs(t, err, ErrTextTooShort)
}

func TestExtractTextMissingFile(t *testing.T) {
	e := NewCommandExtractor("", nil)
	_, err := e.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtractTextConverterFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))

	e := NewCommandExtractor("/nonexistent/pdftotext", nil)
	_, err := e.ExtractText(context.Background(), path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTextTooShort)
}
