package pkg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/vulntrix/pkg/ecosystem"
	"github.com/aquasecurity/vulntrix/pkg/osv"
	"github.com/aquasecurity/vulntrix/pkg/report"
)

const defaultTimeoutMs = 5000

// AppConfig holds the collaborators of the commands. Zero fields fall back to
// the real OSV endpoint, stdout and the wall clock.
type AppConfig struct {
	BaseURL string
	Stdout  io.Writer
	Stderr  io.Writer
	Clock   clock.Clock
}

func (ac AppConfig) withDefaults() AppConfig {
	if ac.BaseURL == "" {
		ac.BaseURL = osv.DefaultBaseURL
	}
	if ac.Stdout == nil {
		ac.Stdout = os.Stdout
	}
	if ac.Stderr == nil {
		ac.Stderr = os.Stderr
	}
	if ac.Clock == nil {
		ac.Clock = clock.RealClock{}
	}
	return ac
}

func (ac AppConfig) NewApp(version string) *cli.App {
	ac = ac.withDefaults()

	// -v is taken by --verbose
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "vulntrix"
	app.Version = version
	app.Usage = "Fast OSV vulnerability lookups across ecosystems"
	app.Writer = ac.Stdout
	app.ErrWriter = ac.Stderr
	app.OnUsageError = onUsageError
	app.Action = noCommand

	// -v and --verbose are separate flags sharing one counter, so that both
	// forms can be mixed in one invocation.
	verbose := new(verbosity)
	app.Flags = []cli.Flag{
		formatFlag(),
		cli.GenericFlag{
			Name:  "verbose",
			Usage: "log to stderr (repeat for more detail)",
			Value: verbose,
		},
		cli.GenericFlag{
			Name:  "v",
			Usage: "shorthand for --verbose",
			Value: verbose,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:         "scan",
			Usage:        "scan a single package",
			ArgsUsage:    "<package>",
			Action:       ac.scan,
			OnUsageError: onUsageError,
			Flags: []cli.Flag{
				cli.GenericFlag{
					Name:  "ecosystem",
					Usage: "package ecosystem (" + strings.Join(ecosystem.Tags(), ", ") + ")",
					Value: &ecosystemValue{},
				},
				cli.StringFlag{
					Name:  "version",
					Usage: "only report advisories affecting this version",
				},
				cli.Uint64Flag{
					Name:  "timeout-ms",
					Usage: "per-request timeout in milliseconds",
					Value: defaultTimeoutMs,
				},
				formatFlag(),
			},
		},
		{
			Name:         "bulk",
			Usage:        "(prototype placeholder) scan many packages from a file, one per line: <ecosystem> <package> [version]",
			ArgsUsage:    "<file>",
			Action:       ac.bulk,
			OnUsageError: onUsageError,
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "timeout-ms",
					Usage: "per-request timeout in milliseconds",
					Value: defaultTimeoutMs,
				},
				cli.IntFlag{
					Name:  "concurrency",
					Usage: "number of concurrent queries (not yet wired)",
					Value: 8,
				},
			},
		},
	}

	return app
}

// Run runs the app and turns a failure into a single "Error:" line on stderr.
// It returns the process exit status.
func (ac AppConfig) Run(version string, args []string) int {
	ac = ac.withDefaults()
	if err := ac.NewApp(version).Run(args); err != nil {
		fmt.Fprintf(ac.Stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return 0
}

func formatFlag() cli.Flag {
	return cli.GenericFlag{
		Name:  "format, f",
		Usage: "output format (table, json, ndjson)",
		Value: &formatValue{format: report.FormatTable},
	}
}

// onUsageError keeps help text off stdout; the caller prints the error.
func onUsageError(_ *cli.Context, err error, _ bool) error {
	return argErrorf("%s", err)
}

func noCommand(c *cli.Context) error {
	if c.NArg() > 0 {
		return argErrorf("unknown command %q", c.Args().First())
	}
	return argErrorf("a command is required (scan or bulk)")
}

// outputFormat prefers --format given after the command over the global one.
func outputFormat(c *cli.Context) report.Format {
	if c.IsSet("format") {
		if v, ok := c.Generic("format").(*formatValue); ok {
			return v.format
		}
	}
	if v, ok := c.GlobalGeneric("format").(*formatValue); ok {
		return v.format
	}
	return report.FormatTable
}

func verbosityOf(c *cli.Context) int {
	if v, ok := c.GlobalGeneric("verbose").(*verbosity); ok {
		return int(*v)
	}
	return 0
}

func userAgent(c *cli.Context) string {
	return fmt.Sprintf("%s/%s", c.App.Name, c.App.Version)
}
