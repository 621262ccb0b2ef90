package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adarobin/regrep"
)

// scanLines reads r line by line, writing each line that re matches to
// w with an optional "prefix:" as real grep does for multi-file invocations.
// In count-only mode no lines are printed, only the final tally; in quiet
// mode nothing is printed at all. It returns whether at least one line
// matched, mirroring exit-status semantics rather than line count.
func scanLines(re *regrep.Regexp, r io.Reader, opts *options, prefix string, w io.Writer) (bool, error) {
	scanner := bufio.NewScanner(r)
	matchedAny := false
	count := 0

	for scanner.Scan() {
		line := scanner.Text()
		if !re.MatchString(line) {
			continue
		}
		matchedAny = true
		count++
		if opts.quiet || opts.countOnly {
			continue
		}
		if prefix != "" {
			fmt.Fprintf(w, "%s:%s\n", prefix, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return matchedAny, err
	}

	if opts.countOnly && !opts.quiet {
		if prefix != "" {
			fmt.Fprintf(w, "%s:%d\n", prefix, count)
		} else {
			fmt.Fprintln(w, count)
		}
	}
	return matchedAny, nil
}

// scanOneLine implements the no-file-argument contract: read exactly one
// line from r regardless of how many more might follow, and report only
// whether that single line matched.
func scanOneLine(re *regrep.Regexp, r io.Reader, opts *options, w io.Writer) (bool, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

	matched := re.MatchString(line)
	if opts.countOnly && !opts.quiet {
		n := 0
		if matched {
			n = 1
		}
		fmt.Fprintln(w, n)
	}
	return matched, nil
}
