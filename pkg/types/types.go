package types

import (
	"encoding/json"

	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// Severity is a single entry of an OSV "severity" list.
// Neither field is validated; both may be empty.
type Severity struct {
	Type  string `json:"type,omitempty"` // e.g. CVSS_V3
	Score string `json:"score,omitempty"`
}

// Advisory mirrors the subset of an OSV vulnerability that vulntrix surfaces.
type Advisory struct {
	ID       string     `json:"id"`
	Summary  string     `json:"summary,omitempty"`
	Details  string     `json:"details,omitempty"`
	Severity []Severity `json:"severity,omitempty"`
}

// UnmarshalJSON requires "id" to be present as a string.
func (a *Advisory) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       *string    `json:"id"`
		Summary  string     `json:"summary"`
		Details  string     `json:"details"`
		Severity []Severity `json:"severity"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.ID == nil {
		return xerrors.New("advisory without id")
	}

	*a = Advisory{
		ID:       *raw.ID,
		Summary:  raw.Summary,
		Details:  raw.Details,
		Severity: raw.Severity,
	}
	return nil
}

// BestSeverity returns the type of the first severity entry, or its score
// when the type is empty. Later entries are never consulted: OSV lists the
// provider-preferred entry first.
func (a Advisory) BestSeverity() string {
	if len(a.Severity) == 0 {
		return ""
	}
	first := a.Severity[0]
	if first.Type != "" {
		return first.Type
	}
	return first.Score
}

// Response is the body of a /v1/query call. An empty list means no known vulnerabilities.
type Response struct {
	Vulns []Advisory `json:"vulns"`
}

// LiteAdvisory is the compact view used for output.
type LiteAdvisory struct {
	ID       string `json:"id"`
	Summary  string `json:"summary,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// NewLiteAdvisory projects an advisory for output. The severity prefers the
// concrete score of the first entry and falls back to BestSeverity.
func NewLiteAdvisory(a Advisory) LiteAdvisory {
	severity := a.BestSeverity()
	if len(a.Severity) > 0 && a.Severity[0].Score != "" {
		severity = a.Severity[0].Score
	}
	return LiteAdvisory{
		ID:       a.ID,
		Summary:  a.Summary,
		Severity: severity,
	}
}

// NewLiteAdvisories projects every advisory, preserving order. It never returns nil.
func NewLiteAdvisories(advisories []Advisory) []LiteAdvisory {
	return lo.Map(advisories, func(a Advisory, _ int) LiteAdvisory {
		return NewLiteAdvisory(a)
	})
}
