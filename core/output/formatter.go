// Package output renders forecast results for humans and machines.
package output

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"charter-forecast/core/engine"
	"charter-forecast/core/types"
	"charter-forecast/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Options controls what a formatter shows
type Options struct {
	// SnapshotYear restricts the per-school table to one year (0 = all)
	SnapshotYear int

	// ShowSchoolDetail includes the full per-school table
	ShowSchoolDetail bool

	// NoColor disables ANSI colors (CLI format only)
	NoColor bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the result
	Render(w io.Writer, result *engine.Result) error
}

// New returns the formatter for a format name
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	case FormatMarkdown:
		return &markdownFormatter{opts: opts}, nil
	default:
		return nil, errors.Newf(errors.TypeNotSupported, "unknown output format: %s", format)
	}
}

// money renders a currency amount with thousands grouping, no cents
func money(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// percent renders a ratio as a percentage, "n/a" when undefined
func percent(r types.Ratio) string {
	if !r.Defined {
		return "n/a"
	}
	return r.Value.Mul(decimal.NewFromInt(100)).Round(1).String() + "%"
}

// ratio renders a plain ratio to two places, "n/a" when undefined
func ratio(r types.Ratio) string {
	if !r.Defined {
		return "n/a"
	}
	return r.Value.Round(2).String() + "x"
}

// snapshotRows filters the table to the requested snapshot year
func snapshotRows(rows []types.YearRow, year int) []types.YearRow {
	if year == 0 {
		return rows
	}
	out := make([]types.YearRow, 0, len(rows))
	for _, r := range rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}
