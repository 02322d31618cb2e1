// Command mygrep reports whether lines of text match a pattern in the
// restricted regular-expression dialect implemented by internal/syntax and
// internal/matcher, mirroring the conventions of line-oriented search
// tools: exit 0 if anything matched, 1 if nothing did, >=2 on a usage or
// pattern error.
package main

import (
	"fmt"
	"os"

	"github.com/grepkit/mygrep/internal/grepcli"
	"github.com/grepkit/mygrep/internal/grepio"
	"github.com/grepkit/mygrep/internal/matcher"
	"github.com/grepkit/mygrep/internal/syntax"
)

func main() {
	log := grepio.NewLogger("info")

	args, err := grepcli.ParseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	root, err := syntax.Parse(args.Pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	scanner := &grepio.Scanner{
		Pattern: matcher.Compile(root),
		Out:     os.Stdout,
		Log:     log,
	}

	foundAny, err := run(scanner, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if foundAny {
		os.Exit(0)
	}
	os.Exit(1)
}

func run(scanner *grepio.Scanner, args grepcli.Args) (bool, error) {
	switch {
	case len(args.Paths) == 0:
		return scanner.ScanReader("stdin", os.Stdin, false)

	case args.Recursive:
		foundAny := false
		for _, root := range args.Paths {
			found, err := scanner.WalkRecursive(root)
			if err != nil {
				return foundAny, err
			}
			if found {
				foundAny = true
			}
		}
		return foundAny, nil

	default:
		addPrefix := len(args.Paths) > 1
		foundAny := false
		for _, path := range args.Paths {
			found, err := scanner.ScanFile(path, addPrefix)
			if err != nil {
				return foundAny, err
			}
			if found {
				foundAny = true
			}
		}
		return foundAny, nil
	}
}
