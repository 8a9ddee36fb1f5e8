package report

import (
	"encoding/json"
	"io"

	"github.com/samber/oops"

	"github.com/aquasecurity/vulntrix/pkg/types"
)

// jsonReport fixes the key order of the json and ndjson output.
type jsonReport struct {
	Package   string               `json:"package"`
	Ecosystem string               `json:"ecosystem"`
	Version   string               `json:"version,omitempty"`
	Vulns     []types.LiteAdvisory `json:"vulns"`
}

// JSONWriter emits one JSON object per report. With Indent unset the object
// fits on a single line, which is the ndjson format.
type JSONWriter struct {
	Output io.Writer
	Indent bool
}

func (w JSONWriter) Write(r Report) error {
	out := jsonReport{
		Package:   r.Package,
		Ecosystem: r.Ecosystem.WireName(),
		Version:   r.Version,
		Vulns:     types.NewLiteAdvisories(r.Vulns),
	}

	enc := json.NewEncoder(w.Output)
	enc.SetEscapeHTML(false)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	// Encode terminates the object with a newline
	if err := enc.Encode(out); err != nil {
		return oops.With("package", r.Package).With("indent", w.Indent).Wrapf(err, "json encode error")
	}
	return nil
}
