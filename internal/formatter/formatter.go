// package formatter renders a sung verse range to various output formats (plain text, Markdown, JSON)
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/bottles/internal/shared"
	"github.com/desertthunder/bottles/internal/song"
)

// Formats accepted by [Export] and the `sing --format` flag.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// songSheet is the JSON shape of an exported range.
type songSheet struct {
	Title      string   `json:"title"`
	StartVerse uint     `json:"start_verse"`
	EndVerse   uint     `json:"end_verse"`
	VerseCount uint     `json:"verse_count"`
	Lines      []string `json:"lines"`
}

// Export renders the range in the named format. Unknown formats are an error
// so flag typos surface instead of silently producing text.
func Export(start, end uint, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return ExportToText(start, end), nil
	case FormatMarkdown:
		return ExportToMarkdown(start, end), nil
	case FormatJSON:
		return ExportToJSON(start, end)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToText renders the range as plain verse text.
func ExportToText(start, end uint) []byte {
	var buf bytes.Buffer
	buf.WriteString(song.Sing(start, end))
	buf.WriteString("\n")
	return buf.Bytes()
}

// ExportToMarkdown renders the range as a Markdown song sheet with one
// blockquote per verse.
func ExportToMarkdown(start, end uint) []byte {
	var buf bytes.Buffer

	buf.WriteString("# 99 Bottles of Beer\n\n")
	buf.WriteString(fmt.Sprintf("**Verses**: %s (%d total)\n\n", shared.FormatRange(start, end), start-end+1))

	for n := int(start); n >= int(end); n-- {
		buf.WriteString(fmt.Sprintf("## Verse %d\n\n", n))
		for _, line := range song.Verse(uint(n)) {
			buf.WriteString(fmt.Sprintf("> %s\n", line))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ExportToJSON renders the range as a JSON song sheet.
func ExportToJSON(start, end uint) ([]byte, error) {
	sheet := songSheet{
		Title:      "99 Bottles of Beer",
		StartVerse: start,
		EndVerse:   end,
		VerseCount: start - end + 1,
		Lines:      song.Lines(start, end),
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal song sheet: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteToFile exports the range to the given path, inferring the format from
// the extension when format is empty (.md -> markdown, .json -> json).
func WriteToFile(start, end uint, format, path string) error {
	if format == "" {
		switch {
		case strings.HasSuffix(path, ".md"):
			format = FormatMarkdown
		case strings.HasSuffix(path, ".json"):
			format = FormatJSON
		default:
			format = FormatText
		}
	}

	data, err := Export(start, end, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
