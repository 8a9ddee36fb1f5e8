package pkg

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/aquasecurity/vulntrix/pkg/log"
)

// bulk only announces the expected input. It neither opens the file nor
// sends queries.
// TODO: run the queries through a bounded worker pool (--concurrency) and emit one ndjson record per input line, in input order.
func (ac AppConfig) bulk(c *cli.Context) error {
	log.SetVerbosity(verbosityOf(c))

	if err := undefinedFlag(c.Args().Tail()); err != nil {
		return err
	}
	if c.NArg() != 1 {
		return argErrorf("bulk requires exactly one <file> argument")
	}
	file := c.Args().First()

	log.Debug("Bulk mode is a placeholder", log.FilePath(file),
		log.Uint64("timeout_ms", c.Uint64("timeout-ms")), log.Int("concurrency", c.Int("concurrency")))

	if c.IsSet("concurrency") {
		log.Warn("--concurrency has no effect until bulk mode sends queries", log.Int("concurrency", c.Int("concurrency")))
	}

	bold := color.New(color.Bold).SprintFunc()
	if _, err := fmt.Fprintf(ac.Stdout, "%s prototype placeholder — expects lines like: %q\n", bold("Bulk mode:"), "<ecosystem> <package> [version]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(ac.Stdout, "Input file: %s\n", file); err != nil {
		return err
	}
	return nil
}
