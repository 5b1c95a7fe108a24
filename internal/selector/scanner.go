package selector

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SourceDir is the directory under the project root that gets scanned.
const SourceDir = "src"

// DefaultExtensions are the source file extensions scanned by default.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// Options configures a Scanner. Zero values select defaults.
type Options struct {
	// Extensions to scan, with or without a leading dot.
	Extensions []string
	// Workers caps concurrent file reads.
	Workers int
	Logger  *zap.Logger
}

// Scanner extracts selector candidates from a project tree.
// A Scanner holds no per-scan state and can be reused.
type Scanner struct {
	exts    map[string]struct{}
	workers int
	logger  *zap.Logger
	// keywords lists the prefilter keyword of every pass, indexed like passes.
	keywords []string
}

// NewScanner creates a Scanner from opts.
func NewScanner(opts Options) *Scanner {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keywords := make([]string, len(passes))
	for i, p := range passes {
		keywords[i] = p.keyword
	}

	return &Scanner{
		exts:     allowed,
		workers:  workers,
		logger:   logger,
		keywords: keywords,
	}
}

// Scan scans <root>/src with default options.
func Scan(root string) []Candidate {
	return NewScanner(Options{}).Scan(root)
}

// sourceFile is a file that was read successfully, with the set of passes
// whose keyword occurs in it.
type sourceFile struct {
	path    string
	content []byte
	passes  []bool
}

// Scan returns the deduplicated candidates found under <root>/src, sorted by
// Kind. A missing root or src directory yields an empty result. Files that
// cannot be read are logged and skipped.
func (s *Scanner) Scan(root string) []Candidate {
	paths := s.collect(filepath.Join(root, SourceDir))
	if len(paths) == 0 {
		return []Candidate{}
	}

	files := s.read(paths)
	s.prefilter(files)

	found := []Candidate{}
	seen := make(map[string]struct{})
	for pi, p := range passes {
		for _, f := range files {
			if f == nil || !f.passes[pi] {
				continue
			}
			for _, m := range p.extract(f.content) {
				if m.value == "" {
					continue
				}
				if _, dup := seen[m.value]; dup {
					continue
				}
				seen[m.value] = struct{}{}
				found = append(found, Candidate{
					Value: m.value,
					Kind:  p.kind,
					File:  f.path,
					Line:  lineAt(f.content, m.offset),
				})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Kind < found[j].Kind })

	s.logger.Debug("selector scan complete",
		zap.String("root", root),
		zap.Int("files", len(paths)),
		zap.Int("candidates", len(found)))
	return found
}

// Matches reports whether path has one of the scanned extensions.
func (s *Scanner) Matches(path string) bool {
	_, ok := s.exts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// collect walks srcDir in lexical order and returns every matching file.
func (s *Scanner) collect(srcDir string) []string {
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	var paths []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && s.Matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("source walk stopped early", zap.String("dir", srcDir), zap.Error(err))
	}
	return paths
}

// read loads every file concurrently. The result keeps the order of paths;
// unreadable files leave a nil slot.
func (s *Scanner) read(paths []string) []*sourceFile {
	files := make([]*sourceFile, len(paths))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				s.logger.Warn("skipping unreadable source file", zap.String("file", path), zap.Error(err))
				return nil
			}
			files[i] = &sourceFile{path: path, content: content}
			return nil
		})
	}
	_ = g.Wait()

	return files
}

// prefilter marks which passes can match each file. A pass whose keyword is
// absent from the content cannot produce a hit and is skipped.
func (s *Scanner) prefilter(files []*sourceFile) {
	matcher := ahocorasick.NewStringMatcher(s.keywords)
	for _, f := range files {
		if f == nil {
			continue
		}
		f.passes = make([]bool, len(passes))
		for _, idx := range matcher.Match(f.content) {
			f.passes[idx] = true
		}
	}
}
