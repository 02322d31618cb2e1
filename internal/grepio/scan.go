package grepio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/grepkit/mygrep/internal/matcher"
)

// Scanner feeds lines from stdin, files, or a recursive directory walk into
// a compiled pattern and prints matching lines, mirroring the printing
// convention of line-oriented search tools: a bare line when there is only
// one source, "<source>:<line>" when there is more than one or the walk is
// recursive.
type Scanner struct {
	Pattern *matcher.Compiled
	Out     io.Writer
	Log     *Logger
}

// ScanReader reads lines from r, printing every line that matches to Out.
// It reports whether any line matched.
func (s *Scanner) ScanReader(source string, r io.Reader, addPrefix bool) (bool, error) {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		ok, _ := s.Pattern.MatchString(line)
		if !ok {
			continue
		}
		found = true
		if addPrefix {
			fmt.Fprintf(s.Out, "%s:%s\n", source, line)
		} else {
			fmt.Fprintln(s.Out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("reading %s: %w", source, err)
	}
	return found, nil
}

// ScanFile opens path and scans it like ScanReader.
func (s *Scanner) ScanFile(path string, addPrefix bool) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return s.ScanReader(path, f, addPrefix)
}

// WalkRecursive walks root, treating every regular file as a source of
// lines, and reports whether any line in any file matched. Unreadable
// entries are logged and skipped rather than aborting the whole walk.
func (s *Scanner) WalkRecursive(root string) (bool, error) {
	foundAny := false
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if s.Log != nil {
				s.Log.Errorf("WalkRecursive", "failed to stat %s: %v", path, err)
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		found, err := s.ScanFile(path, true)
		if err != nil {
			if s.Log != nil {
				s.Log.Errorf("WalkRecursive", "%v", err)
			}
			return nil
		}
		if found {
			foundAny = true
		}
		return nil
	})
	if err != nil {
		return foundAny, fmt.Errorf("walking %s: %w", root, err)
	}
	return foundAny, nil
}
