// Command regrep is a line-oriented pattern-matching utility built on the
// regrep engine: given an -E pattern and zero or more files (or a -r
// directory), it prints the matching lines of those files and exits 0 if
// anything matched, 1 otherwise. With no file it reads one line from stdin
// and reports the result only through the exit status.
package main

import (
	"log"
	"os"

	"github.com/adarobin/regrep"
)

func main() {
	logger := log.New(os.Stderr, "", 0)

	defaults := loadFileDefaults(".")
	opts, err := parseArgs(os.Args[1:], defaults)
	if err != nil {
		logger.Println("usage: regrep -E <pattern> [-r dir] [-c] [-q] [file...]")
		logger.Println(err)
		os.Exit(1)
	}

	re, err := regrep.Compile(opts.pattern)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}

	matched, err := run(re, opts)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
	if !matched {
		os.Exit(1)
	}
}

// run dispatches to the stdin/single-file/multi-file/recursive shapes and
// reports whether any line matched across the whole invocation.
func run(re *regrep.Regexp, opts *options) (bool, error) {
	files := opts.files
	if opts.recursiveDir != "" {
		walked, err := walkFiles(opts.recursiveDir)
		if err != nil {
			return false, err
		}
		files = append(files, walked...)
	}

	switch {
	case len(files) == 0:
		return scanOneLine(re, os.Stdin, opts, os.Stdout)

	case len(files) == 1 && opts.recursiveDir == "":
		f, err := os.Open(files[0])
		if err != nil {
			return false, err
		}
		defer f.Close()
		return scanLines(re, f, opts, "", os.Stdout)

	default:
		matchedAny := false
		for _, path := range files {
			f, err := os.Open(path)
			if err != nil {
				return matchedAny, err
			}
			m, err := scanLines(re, f, opts, path, os.Stdout)
			f.Close()
			if err != nil {
				return matchedAny, err
			}
			matchedAny = matchedAny || m
		}
		return matchedAny, nil
	}
}
