package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/relaxedik/kinconfig"
	"go.viam.com/relaxedik/logging"
)

// ValidateAction loads every info file given with cross-field validation and prints the
// result for each. It fails if any file does not load.
func ValidateAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("validate needs at least one info file")
	}
	opts := validateOptions(c)
	if c.Bool(collectFlag) {
		opts = append(opts, kinconfig.WithCollectErrors())
	}

	var failed int
	for _, path := range c.Args().Slice() {
		_, err := kinconfig.LoadConfig(path, opts...)
		if !printResult(c.App.Writer, path, err) {
			failed++
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d info files failed validation", failed, c.NArg()), 1)
	}
	return nil
}

// WatchAction validates an info file, then validates it again whenever it is written, until
// the context is cancelled.
func WatchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("watch needs exactly one info file")
	}
	path := filepath.Clean(c.Args().First())
	logger := logging.Global().Sublogger("watch")
	opts := validateOptions(c)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		//nolint:errcheck
		watcher.Close()
	}()
	// Editors often replace the file instead of writing to it, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "failed to watch %q", path)
	}

	check := func() {
		_, err := kinconfig.LoadConfig(path, opts...)
		printResult(c.App.Writer, path, err)
	}
	check()
	for {
		select {
		case <-c.Context.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debugw("info file changed", "path", path, "op", event.Op.String())
			check()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("file watcher error", "error", err)
		}
	}
}

// ShowAction prints the chain table of a single info file.
func ShowAction(c *cli.Context) error {
	cfg, err := loadSingle(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, cfg.String())
	return nil
}

// FormatAction prints an info file the way MarshalConfig writes it. With --write it rewrites the
// file in place instead, and with --diff it prints only what would change.
func FormatAction(c *cli.Context) error {
	if c.Bool(writeFlag) && c.Bool(diffFlag) {
		return errors.Errorf("--%s and --%s cannot be used together", writeFlag, diffFlag)
	}
	cfg, err := loadSingle(c)
	if err != nil {
		return err
	}
	path := c.Args().First()
	if c.Bool(writeFlag) {
		return kinconfig.WriteConfigFile(cfg, path)
	}
	data, err := kinconfig.MarshalConfig(cfg)
	if err != nil {
		return err
	}
	if c.Bool(diffFlag) {
		//nolint:gosec
		current, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %q", path)
		}
		fmt.Fprint(c.App.Writer, prettyDiff(string(current), string(data)))
		return nil
	}
	_, err = c.App.Writer.Write(data)
	return err
}

// SchemaAction prints the JSON schema of the info file format.
func SchemaAction(c *cli.Context) error {
	data, err := json.MarshalIndent(kinconfig.JSONSchema(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal schema")
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

func validateOptions(c *cli.Context) []kinconfig.Option {
	opts := []kinconfig.Option{kinconfig.WithValidation()}
	if c.Bool(strictFlag) {
		opts = append(opts, kinconfig.WithStrictArity())
	}
	return opts
}

// printResult reports whether err is nil, listing each combined error on its own line otherwise.
func printResult(w io.Writer, path string, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "%s: OK\n", path)
		return true
	}
	fmt.Fprintf(w, "%s: FAILED\n", path)
	for _, e := range multierr.Errors(err) {
		fmt.Fprintf(w, "\t%v\n", e)
	}
	return false
}

// prettyDiff returns the changed parts of right relative to left, or the empty string when they match.
func prettyDiff(left, right string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(left, right, true)
	filtered := make([]diffmatchpatch.Diff, 0, len(diffs))
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		filtered = append(filtered, d)
	}
	return dmp.DiffPrettyText(filtered)
}

func loadSingle(c *cli.Context) (*kinconfig.RobotKinematicsConfig, error) {
	if c.NArg() != 1 {
		return nil, errors.Errorf("%s needs exactly one info file", c.Command.Name)
	}
	return kinconfig.LoadConfig(c.Args().First())
}
