package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"go.viam.com/relaxedik/logging"
)

const (
	debugFlag    = "debug"
	logLevelFlag = "log-level"
	strictFlag   = "strict"
	collectFlag  = "collect"
	writeFlag    = "write"
	diffFlag     = "diff"
)

var app = &cli.App{
	Name:            "kinconfig",
	Usage:           "check and inspect relaxed IK robot info files",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    debugFlag,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
		&cli.StringFlag{
			Name:  logLevelFlag,
			Value: "info",
			Usage: "minimum level to log: debug, info, warn or error",
		},
	},
	Before: setupLogging,
	Commands: []*cli.Command{
		{
			Name:      "validate",
			Usage:     "load info files and check that their fields agree with each other",
			ArgsUsage: "<info-file> [<info-file>...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  strictFlag,
					Usage: "reject limit pairs and vectors with extra elements",
				},
				&cli.BoolFlag{
					Name:  collectFlag,
					Usage: "report every bad field instead of stopping at the first",
				},
			},
			Action: ValidateAction,
		},
		{
			Name:      "show",
			Usage:     "print the kinematic chains of an info file as a table",
			ArgsUsage: "<info-file>",
			Action:    ShowAction,
		},
		{
			Name:      "fmt",
			Usage:     "print an info file in canonical form",
			ArgsUsage: "<info-file>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    writeFlag,
					Aliases: []string{"w"},
					Usage:   "rewrite the file in place instead of printing it",
				},
				&cli.BoolFlag{
					Name:    diffFlag,
					Aliases: []string{"d"},
					Usage:   "print only what differs from the canonical form",
				},
			},
			Action: FormatAction,
		},
		{
			Name:      "watch",
			Usage:     "validate an info file again every time it changes",
			ArgsUsage: "<info-file>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  strictFlag,
					Usage: "reject limit pairs and vectors with extra elements",
				},
			},
			Action: WatchAction,
		},
		{
			Name:   "schema",
			Usage:  "print the JSON schema of the info file format",
			Action: SchemaAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

// setupLogging replaces the global logger with one that writes to the app's error writer, so that
// loads log through it by default.
func setupLogging(c *cli.Context) error {
	level := logging.DEBUG
	if !c.Bool(debugFlag) {
		var err error
		if level, err = logging.LevelFromString(c.String(logLevelFlag)); err != nil {
			return err
		}
	}
	logger := logging.NewBlankLogger("relaxedik")
	logger.SetLevel(level)
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logging.ReplaceGlobal(logger)
	return nil
}
