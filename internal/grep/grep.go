// Package grep runs a compiled pattern over lines of input and prints the
// ones that match.
package grep

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/funkybooboo/mygrep/internal/regex"
)

type Options struct {
	OnlyMatching bool
	Color        bool
	Recursive    bool
	// Include restricts a recursive search to files whose base name matches
	// one of these wildcard patterns.
	Include []string
}

type Searcher struct {
	re        *regex.Regexp
	out       io.Writer
	logger    *zap.Logger
	opts      Options
	highlight *color.Color
}

func New(re *regex.Regexp, out io.Writer, logger *zap.Logger, opts Options) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Searcher{re: re, out: out, logger: logger, opts: opts}
	if opts.Color {
		s.highlight = color.New(color.FgRed, color.Bold)
		s.highlight.EnableColor()
	}
	return s
}

// SearchFirstLine reads a single line from r and prints it if it matches.
// Input without a trailing newline counts as one line; empty input holds no
// line and never matches.
func (s *Searcher) SearchFirstLine(r io.Reader) (bool, error) {
	text, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read stdin: %w", err)
	}
	if text == "" {
		return false, nil
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return s.emit("stdin", text, false)
}

// SearchLines matches every line of r independently. When prefix is true
// matching lines are printed as name:line.
func (s *Searcher) SearchLines(name string, r io.Reader, prefix bool) (bool, error) {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		ok, err := s.emit(name, scanner.Text(), prefix)
		if err != nil {
			return found, err
		}
		found = found || ok
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("read %s: %w", name, err)
	}
	return found, nil
}

// SearchPaths searches files, or whole trees when Recursive is set. Names
// are prefixed when more than one file can be involved.
func (s *Searcher) SearchPaths(paths []string) (bool, error) {
	prefix := s.opts.Recursive || len(paths) > 1
	found := false

	for _, root := range paths {
		var ok bool
		var err error
		if s.opts.Recursive {
			ok, err = s.searchTree(root)
		} else {
			ok, err = s.searchFile(root, prefix)
		}
		if err != nil {
			return found, err
		}
		found = found || ok
	}
	return found, nil
}

func (s *Searcher) searchFile(path string, prefix bool) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return s.SearchLines(path, f, prefix)
}

// searchTree walks root. Unreadable entries below root are logged and
// skipped; only a missing or unreadable root is an error.
func (s *Searcher) searchTree(root string) (bool, error) {
	found := false
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() || !s.included(path) {
			return nil
		}
		ok, err := s.searchFile(path, true)
		if err != nil {
			s.logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
			return nil
		}
		found = found || ok
		return nil
	})
	if err != nil {
		return found, fmt.Errorf("walk %s: %w", root, err)
	}
	return found, nil
}

func (s *Searcher) included(path string) bool {
	if len(s.opts.Include) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, glob := range s.opts.Include {
		if wildcard.Match(glob, base) {
			return true
		}
	}
	return false
}

// emit matches one line and prints it, or its matched spans, on success.
func (s *Searcher) emit(name, line string, prefix bool) (bool, error) {
	s.logger.Debug("scanning line", zap.String("source", name), zap.String("line", line))

	var locs [][]int
	if s.opts.OnlyMatching || s.highlight != nil {
		locs = s.re.FindAllStringIndex(line, -1)
	} else if loc := s.re.FindStringIndex(line); loc != nil {
		locs = [][]int{loc}
	}
	if len(locs) == 0 {
		return false, nil
	}
	s.logger.Debug("matched", zap.String("source", name), zap.Ints("span", locs[0]))

	lead := ""
	if prefix {
		lead = name + ":"
	}

	if s.opts.OnlyMatching {
		for _, loc := range locs {
			if loc[0] == loc[1] {
				continue
			}
			if _, err := fmt.Fprintln(s.out, lead+s.paint(line[loc[0]:loc[1]])); err != nil {
				return true, fmt.Errorf("write output: %w", err)
			}
		}
		return true, nil
	}

	if _, err := fmt.Fprintln(s.out, lead+s.highlightSpans(line, locs)); err != nil {
		return true, fmt.Errorf("write output: %w", err)
	}
	return true, nil
}

func (s *Searcher) paint(text string) string {
	if s.highlight == nil {
		return text
	}
	return s.highlight.Sprint(text)
}

func (s *Searcher) highlightSpans(line string, locs [][]int) string {
	if s.highlight == nil {
		return line
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		b.WriteString(line[last:loc[0]])
		b.WriteString(s.paint(line[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
