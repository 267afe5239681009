package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rightsledger/rights-parser/constants"
)

// MinTextLength is the smallest plausible agreement text; anything shorter
// means the conversion produced garbage (scan with no text layer, empty
// file) and retrying will not help.
const MinTextLength = 100

// ErrTextTooShort marks a document whose extracted text is unusable.
var ErrTextTooShort = errors.New("extracted text too short")

// Extractor converts a stored source document to plain text. The PDF
// conversion itself is an external collaborator; this interface is its
// boundary.
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// CommandExtractor shells out to pdftotext for PDF input and reads plain
// text files directly.
type CommandExtractor struct {
	bin string
	log *slog.Logger
}

func NewCommandExtractor(bin string, logger *slog.Logger) *CommandExtractor {
	if bin == "" {
		bin = "pdftotext"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandExtractor{bin: bin, log: logger}
}

func (e *CommandExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))

	var raw string
	switch ext {
	case "txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		raw = string(b)
	default:
		// "-" writes the converted text to stdout
		cmd := exec.CommandContext(ctx, e.bin, "-layout", path, "-")
		var out, stderr bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			e.log.Error("pdftext.convert_failed", "path", path, "stderr", stderr.String(), "error", err)
			return "", fmt.Errorf("pdftotext: %w", err)
		}
		raw = out.String()
	}

	text := CleanText(raw)
	if len(text) < MinTextLength {
		return "", fmt.Errorf("%w: %d chars", ErrTextTooShort, len(text))
	}
	e.log.Info("pdftext.extracted", "path", path, "chars", len(text))
	return text, nil
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanText strips control characters, collapses whitespace runs, and
// normalizes blank-line stretches.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 0x20 {
			b.WriteRune(r)
		}
	}
	out := spaceRuns.ReplaceAllString(b.String(), " ")
	out = newlineRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
