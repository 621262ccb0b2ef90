package main

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseArgsPatternAndFiles(t *testing.T) {
	opts, err := parseArgs([]string{"-E", `\d+`, "a.txt", "b.txt"}, fileDefaults{})
	assert.NilError(t, err)
	assert.Equal(t, opts.pattern, `\d+`)
	assert.DeepEqual(t, opts.files, []string{"a.txt", "b.txt"})
	assert.Assert(t, !opts.countOnly)
	assert.Assert(t, !opts.quiet)
}

func TestParseArgsFlagsInterleaveWithFiles(t *testing.T) {
	opts, err := parseArgs([]string{"a.txt", "-E", "cat", "-c", "b.txt", "-q"}, fileDefaults{})
	assert.NilError(t, err)
	assert.Equal(t, opts.pattern, "cat")
	assert.DeepEqual(t, opts.files, []string{"a.txt", "b.txt"})
	assert.Assert(t, opts.countOnly)
	assert.Assert(t, opts.quiet)
}

func TestParseArgsRecursiveDir(t *testing.T) {
	opts, err := parseArgs([]string{"-E", "cat", "-r", "logs"}, fileDefaults{})
	assert.NilError(t, err)
	assert.Equal(t, opts.recursiveDir, "logs")
}

func TestParseArgsMissingPatternIsError(t *testing.T) {
	_, err := parseArgs([]string{"-c", "a.txt"}, fileDefaults{})
	assert.Assert(t, err != nil)
}

func TestParseArgsDanglingFlagIsError(t *testing.T) {
	_, err := parseArgs([]string{"-E"}, fileDefaults{})
	assert.Assert(t, err != nil)

	_, err = parseArgs([]string{"-E", "cat", "-r"}, fileDefaults{})
	assert.Assert(t, err != nil)
}

func TestParseArgsFileDefaultsApplyWhenFlagsAbsent(t *testing.T) {
	opts, err := parseArgs([]string{"-E", "cat"}, fileDefaults{CountOnly: true, Quiet: true})
	assert.NilError(t, err)
	assert.Assert(t, opts.countOnly)
	assert.Assert(t, opts.quiet)
}
