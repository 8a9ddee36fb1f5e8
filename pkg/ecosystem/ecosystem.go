package ecosystem

import (
	"strings"

	"github.com/package-url/packageurl-go"
	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// Type represents an ecosystem identifier (CLI tag)
type Type string

const (
	Unknown Type = "unknown"

	CratesIO  Type = "crates-io"
	PyPI      Type = "pypi"
	Npm       Type = "npm"
	RubyGems  Type = "rubygems"
	Maven     Type = "maven"
	Packagist Type = "packagist"
	Go        Type = "go"
	NuGet     Type = "nuget"
	Pub       Type = "pub"
)

type entry struct {
	tag      Type
	wireName string
	purlType string
}

// registry keeps the supported ecosystems in the order they are listed to users.
// The wire name is what OSV expects in the "ecosystem" field of a query and
// cannot be derived from the tag.
var registry = []entry{
	{tag: CratesIO, wireName: "crates.io", purlType: packageurl.TypeCargo},
	{tag: PyPI, wireName: "PyPI", purlType: packageurl.TypePyPi},
	{tag: Npm, wireName: "npm", purlType: packageurl.TypeNPM},
	{tag: RubyGems, wireName: "RubyGems", purlType: packageurl.TypeGem},
	{tag: Maven, wireName: "Maven", purlType: packageurl.TypeMaven},
	{tag: Packagist, wireName: "Packagist", purlType: packageurl.TypeComposer},
	{tag: Go, wireName: "Go", purlType: packageurl.TypeGolang},
	{tag: NuGet, wireName: "NuGet", purlType: packageurl.TypeNuget},
	{tag: Pub, wireName: "Pub", purlType: "pub"},
}

// Parse maps a CLI tag to a registered ecosystem.
func Parse(tag string) (Type, error) {
	e, ok := lo.Find(registry, func(e entry) bool {
		return string(e.tag) == tag
	})
	if !ok {
		return Unknown, xerrors.Errorf("unknown ecosystem %q (expected one of: %s)", tag, strings.Join(Tags(), ", "))
	}
	return e.tag, nil
}

// Tags returns the CLI tags of all supported ecosystems.
func Tags() []string {
	return lo.Map(registry, func(e entry, _ int) string {
		return string(e.tag)
	})
}

// All returns all supported ecosystems
func All() []Type {
	return lo.Map(registry, func(e entry, _ int) Type {
		return e.tag
	})
}

// WireName returns the canonical OSV name, e.g. "crates.io" for crates-io.
// It returns an empty string for an unregistered type.
func (t Type) WireName() string {
	e, _ := lo.Find(registry, func(e entry) bool {
		return e.tag == t
	})
	return e.wireName
}

// PackageURL renders the package as a purl, e.g. "pkg:pypi/requests@2.19.1".
func (t Type) PackageURL(name, version string) string {
	e, ok := lo.Find(registry, func(e entry) bool {
		return e.tag == t
	})
	if !ok {
		return ""
	}

	var namespace string
	switch t {
	case Maven:
		// group:artifact
		if group, artifact, found := strings.Cut(name, ":"); found {
			namespace, name = group, artifact
		}
	case Go, Packagist:
		if i := strings.LastIndex(name, "/"); i >= 0 {
			namespace, name = name[:i], name[i+1:]
		}
	case Npm:
		if strings.HasPrefix(name, "@") {
			if scope, pkg, found := strings.Cut(name, "/"); found {
				namespace, name = scope, pkg
			}
		}
	}
	return packageurl.NewPackageURL(e.purlType, namespace, name, version, nil, "").ToString()
}

// String returns the string representation of the ecosystem type
func (t Type) String() string {
	return string(t)
}
