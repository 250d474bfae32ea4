package logging

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"go.viam.com/test"
)

type jointSummary struct {
	Name  string
	Chain int
	notes string
}

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	// Use the length of the first string as a weak verification of checking that the result looks like a date.
	test.That(t, len(actualParts[0]), test.ShouldEqual, len(expectedParts[0]))
	// Log level and logger name.
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])
	test.That(t, actualParts[2], test.ShouldEqual, expectedParts[2])

	// Filename:line_number.
	actualFilename, actualLineNumber, found := strings.Cut(actualParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, found := strings.Cut(expectedParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)
	_, err = strconv.Atoi(actualLineNumber)
	test.That(t, err, test.ShouldBeNil)

	// Log message.
	test.That(t, actualParts[4], test.ShouldEqual, expectedParts[4])
	if len(actualParts) == 5 {
		return
	}

	expectedMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(expectedParts[5]), &expectedMap), test.ShouldBeNil)
	actualMap := make(map[string]any)
	test.That(t, json.Unmarshal([]byte(actualParts[5]), &actualMap), test.ShouldBeNil)
	test.That(t, actualMap, test.ShouldResemble, expectedMap)
}

func TestConsoleOutputFormat(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newImpl("kinconfig", DEBUG, true, NewWriterAppender(notStdout))

	logger.Info("loaded info file")
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	INFO	kinconfig	logging/impl_test.go:67	loaded info file`)

	logger.Debugf("read %d documents", 2)
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	DEBUG	kinconfig	logging/impl_test.go:71	read 2 documents`)

	logger.Warnw("ignoring extra tuple elements", "field", "joint_limits", "index", 3)
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	WARN	kinconfig	logging/impl_test.go:75	ignoring extra tuple elements	{"field":"joint_limits","index":3}`)

	// Only exported struct fields are serialized.
	logger.Errorw("bad joint", "joint", jointSummary{"j1", 0, "unused"})
	assertLogMatches(t, notStdout,
		`2023-10-30T09:12:09.459Z	ERROR	kinconfig	logging/impl_test.go:80	bad joint	{"joint":{"Name":"j1","Chain":0}}`)
}

func TestLevelFiltering(t *testing.T) {
	notStdout := &bytes.Buffer{}
	logger := newImpl("", INFO, true, NewWriterAppender(notStdout))

	logger.Debug("not shown")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.SetLevel(ERROR)
	logger.Warn("not shown either")
	test.That(t, notStdout.Len(), test.ShouldEqual, 0)

	logger.Error("shown")
	test.That(t, notStdout.String(), test.ShouldContainSubstring, "shown")
	test.That(t, logger.GetLevel(), test.ShouldEqual, ERROR)
}

func TestSublogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	sub := logger.Sublogger("kinconfig").Sublogger("extract")

	sub.Infow("field decoded", "field", "joint_names")
	test.That(t, logs.Len(), test.ShouldEqual, 1)
	entry := logs.All()[0]
	test.That(t, entry.LoggerName, test.ShouldEqual, "kinconfig.extract")
	test.That(t, entry.Message, test.ShouldEqual, "field decoded")
	test.That(t, entry.ContextMap()["field"], test.ShouldEqual, "joint_names")
	test.That(t, sub.Sync(), test.ShouldBeNil)
}

func TestSubloggerLevelsAndAppenders(t *testing.T) {
	parent := NewBlankLogger("relaxedik")
	parent.SetLevel(WARN)
	sub := parent.Sublogger("kinconfig")
	test.That(t, sub.GetLevel(), test.ShouldEqual, WARN)

	sub.SetLevel(DEBUG)
	test.That(t, parent.GetLevel(), test.ShouldEqual, WARN)

	// Appenders added to the parent after the sublogger was made still receive its logs.
	out := &bytes.Buffer{}
	parent.AddAppender(NewWriterAppender(out))
	sub.Debugw("read info file", "documents", 1)
	assertLogMatches(t, out,
		`2023-10-30T09:12:09.459Z	DEBUG	relaxedik.kinconfig	logging/impl_test.go:118	read info file	{"documents":1}`)

	parent.Info("filtered by the parent level")
	test.That(t, out.Len(), test.ShouldEqual, 0)
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.expected)
	}

	_, err := LevelFromString("verbose")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "verbose")
	test.That(t, WARN.String(), test.ShouldEqual, "Warn")
}
