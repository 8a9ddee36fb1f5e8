package report

import (
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/vulntrix/pkg/ecosystem"
	"github.com/aquasecurity/vulntrix/pkg/types"
)

type Format string

const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
)

var SupportedFormats = []Format{
	FormatTable,
	FormatJSON,
	FormatNDJSON,
}

func ParseFormat(s string) (Format, error) {
	f, ok := lo.Find(SupportedFormats, func(f Format) bool {
		return string(f) == s
	})
	if !ok {
		return "", xerrors.Errorf("unknown format %q (expected one of: %s)", s, formatList())
	}
	return f, nil
}

func formatList() string {
	return strings.Join(lo.Map(SupportedFormats, func(f Format, _ int) string {
		return string(f)
	}), ", ")
}

// Report is what a single scan renders.
type Report struct {
	Package   string
	Ecosystem ecosystem.Type
	Version   string
	Vulns     []types.Advisory
}

// Writer renders a report to its output.
type Writer interface {
	Write(Report) error
}

// NewWriter returns the writer for the given format. The format is assumed to
// be one of SupportedFormats; anything else falls back to the table.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return JSONWriter{Output: output, Indent: true}
	case FormatNDJSON:
		return JSONWriter{Output: output}
	default:
		return TableWriter{Output: output}
	}
}
