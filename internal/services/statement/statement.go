// Package statement parses uploaded bank files (OFX, CNAB240, CNAB400) into
// the normalized transactions and return events the reconciliation pipeline
// consumes. Parsers collect malformed lines as positional errors instead of
// failing the whole file; only a file that yields zero records is an error.
package statement

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

// Parser reads one bank file layout into a ParsedStatement.
type Parser interface {
	Parse(ctx context.Context, r io.Reader) (*models.ParsedStatement, error)
}

// MapParser dispatches parsing by detected format.
type MapParser map[models.Format]Parser

func NewMapParser() MapParser {
	// register all parsers here
	return MapParser{
		models.FormatOFX:     &ofxParser{},
		models.FormatCNAB240: &cnab240Parser{},
		models.FormatCNAB400: &cnab400Parser{},
	}
}

func (m MapParser) Parse(ctx context.Context, format models.Format, r io.Reader) (*models.ParsedStatement, error) {
	parser, ok := m[format]
	if !ok {
		return nil, common.ErrUnableGetParser
	}

	return parser.Parse(ctx, r)
}

// Detect sniffs the file format from the first bytes of the upload, falling
// back to the file extension. The head should carry at least the first full
// line.
func Detect(head []byte, fileName string) models.Format {
	text := string(head)
	upper := strings.ToUpper(text)

	if strings.Contains(upper, "OFXHEADER") || strings.Contains(upper, "<OFX>") {
		return models.FormatOFX
	}

	if format, ok := detectByLineWidth(text); ok {
		return format
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".ofx":
		return models.FormatOFX
	case ".ret":
		return models.FormatCNAB400
	case ".rem":
		return models.FormatCNAB240
	}

	// .txt carries no layout hint beyond the line width checked above
	return models.FormatUnknown
}

// detectByLineWidth classifies by the width of the first line. Without a
// newline in the head the width is only trusted when the head is exactly one
// CNAB record, meaning a single-line file.
func detectByLineWidth(text string) (models.Format, bool) {
	line, _, found := strings.Cut(text, "\n")
	line = strings.TrimRight(line, "\r")

	if !found && len(line) != cnab240LineWidth && len(line) != cnab400LineWidth {
		return models.FormatUnknown, false
	}

	switch len(line) {
	case cnab240LineWidth:
		return models.FormatCNAB240, true
	case cnab400LineWidth:
		return models.FormatCNAB400, true
	}

	return models.FormatUnknown, false
}
