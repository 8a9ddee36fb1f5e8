package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/oops"
)

const (
	banner     = "vulntrix — OSV results"
	noVulns    = "No vulnerabilities found."
	vulnsTitle = "Vulnerabilities:"
	absent     = "-"
)

var (
	bold    = color.New(color.Bold).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	heading = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// TableWriter renders a report for humans. Emphasis is decoration only; the
// text reads the same with escape codes stripped.
type TableWriter struct {
	Output io.Writer
}

func (w TableWriter) Write(r Report) error {
	var b strings.Builder

	b.WriteString(bold(banner) + "\n")
	fmt.Fprintf(&b, "Package: %s  Ecosystem: %s", r.Package, r.Ecosystem.WireName())
	if r.Version != "" {
		fmt.Fprintf(&b, "  Version: %s", r.Version)
	}
	b.WriteString("\n")

	if len(r.Vulns) == 0 {
		b.WriteString(green(noVulns) + "\n")
	} else {
		b.WriteString(heading(vulnsTitle) + "\n")
		for _, v := range r.Vulns {
			fmt.Fprintf(&b, "• %s [%s] %s\n", bold(v.ID), orAbsent(v.BestSeverity()), orAbsent(v.Summary))
		}
	}

	if _, err := io.WriteString(w.Output, b.String()); err != nil {
		return oops.With("package", r.Package).Wrapf(err, "table write error")
	}
	return nil
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}
