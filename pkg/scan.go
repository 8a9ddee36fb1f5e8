package pkg

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/urfave/cli"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/vulntrix/pkg/log"
	"github.com/aquasecurity/vulntrix/pkg/osv"
	"github.com/aquasecurity/vulntrix/pkg/report"
)

// maxTimeoutMs is the largest --timeout-ms that fits in a time.Duration.
const maxTimeoutMs = uint64(math.MaxInt64 / int64(time.Millisecond))

func (ac AppConfig) scan(c *cli.Context) error {
	log.SetVerbosity(verbosityOf(c))

	if err := undefinedFlag(c.Args().Tail()); err != nil {
		return err
	}
	if c.NArg() == 0 {
		return argErrorf("scan requires a <package> argument")
	} else if c.NArg() > 1 {
		return argErrorf("scan takes exactly one <package> argument, got %d", c.NArg())
	}
	pkgName := c.Args().First()
	if pkgName == "" {
		return argErrorf("package name must not be empty")
	}

	eco, ok := c.Generic("ecosystem").(*ecosystemValue)
	if !ok || eco.eco == "" {
		return argErrorf("--ecosystem is required")
	}

	timeoutMs := c.Uint64("timeout-ms")
	if timeoutMs == 0 {
		return argErrorf("--timeout-ms must be greater than zero")
	} else if timeoutMs > maxTimeoutMs {
		return argErrorf("--timeout-ms must not exceed %d", maxTimeoutMs)
	}
	timeout := time.Duration(timeoutMs) * time.Millisecond

	q := osv.Query{
		Package:   pkgName,
		Ecosystem: eco.eco,
		Version:   c.String("version"),
	}
	format := outputFormat(c)

	client := osv.NewClient(timeout)
	client.BaseURL = ac.BaseURL
	client.UserAgent = userAgent(c)

	logger := log.WithPrefix("scan")
	logger.Debug("Querying OSV",
		log.String("purl", q.Ecosystem.PackageURL(q.Package, q.Version)),
		log.String("endpoint", client.BaseURL+osv.QueryEndpoint),
		log.Duration("timeout", timeout),
	)

	start := ac.Clock.Now()
	resp, err := client.Query(context.Background(), q)
	if err != nil {
		logger.Debug("OSV query failed", log.Elapsed(ac.Clock.Since(start)), log.Err(err))
		return oops.In("scan").
			With("package", q.Package).
			With("ecosystem", q.Ecosystem.WireName()).
			Wrapf(err, "OSV query error")
	}
	logger.Debug("OSV query completed", log.Elapsed(ac.Clock.Since(start)))
	logger.Info("Advisories found", log.String("package", q.Package), log.Int("count", len(resp.Vulns)))

	r := report.Report{
		Package:   q.Package,
		Ecosystem: q.Ecosystem,
		Version:   q.Version,
		Vulns:     resp.Vulns,
	}
	if err = report.NewWriter(format, ac.Stdout).Write(r); err != nil {
		return xerrors.Errorf("failed to write the %s report: %w", format, err)
	}
	return nil
}

// undefinedFlag reports the first argument after the positional one that looks
// like a flag. cli stops parsing flags at the first unknown one and hands the
// rest over as arguments.
func undefinedFlag(args []string) error {
	for _, a := range args {
		if a != "-" && strings.HasPrefix(a, "-") {
			return argErrorf("flag provided but not defined: %s", a)
		}
	}
	return nil
}
