package pkg

import (
	"strconv"

	"github.com/aquasecurity/vulntrix/pkg/ecosystem"
	"github.com/aquasecurity/vulntrix/pkg/report"
)

// verbosity counts how many times --verbose was given.
type verbosity int

// Set is called with "true" for every occurrence. A number, as in
// --verbose=2, sets the count directly.
func (v *verbosity) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		*v = verbosity(n)
		return nil
	}
	if b, err := strconv.ParseBool(s); err == nil && !b {
		return nil
	}
	*v++
	return nil
}

func (v *verbosity) String() string {
	return strconv.Itoa(int(*v))
}

// IsBoolFlag lets the flag appear without a value.
func (v *verbosity) IsBoolFlag() bool {
	return true
}

// ecosystemValue rejects unknown tags while the flags are parsed.
type ecosystemValue struct {
	eco ecosystem.Type
}

func (e *ecosystemValue) Set(s string) error {
	eco, err := ecosystem.Parse(s)
	if err != nil {
		return err
	}
	e.eco = eco
	return nil
}

func (e *ecosystemValue) String() string {
	if e.eco == "" {
		return ""
	}
	return e.eco.String()
}

type formatValue struct {
	format report.Format
}

func (f *formatValue) Set(s string) error {
	format, err := report.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatValue) String() string {
	return string(f.format)
}
