package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"

	"github.com/Sumatoshi-tech/distpatch/pkg/textutil"
)

// DefaultRoot is the conventional bundler output directory.
const DefaultRoot = "dist"

// DefaultInclude matches JavaScript files at any depth. With '/' as the
// separator, ** crosses directory boundaries while * does not.
const DefaultInclude = "**.js"

// ErrNoRules indicates a Patcher was constructed without any rules.
var ErrNoRules = errors.New("no rules to apply")

// Options holds the knobs for one patch run.
type Options struct {
	// Root is the directory tree to scan. Defaults to DefaultRoot.
	Root string
	// Include is the glob candidate files must match, evaluated against the
	// slash-separated path relative to Root. Defaults to DefaultInclude.
	Include string
	// DryRun reports changes without writing any file.
	DryRun bool
	// CollectChanges retains before/after content on the report for diff
	// rendering. Off by default to keep memory flat on large trees.
	CollectChanges bool
}

// FileChange captures one rewritten file when change collection is on.
type FileChange struct {
	Path   string
	Before string
	After  string
}

// Patcher applies an ordered rule set to every candidate file under a
// build-output tree. Processing is sequential and file-by-file; each
// read/modify/write is self-contained.
type Patcher struct {
	rules   []Rule
	opts    Options
	include glob.Glob

	// OnFile, when set, is called once per candidate file before processing.
	OnFile func(path string)
}

// New validates options, compiles the include glob, and returns a Patcher.
func New(rules []Rule, opts Options) (*Patcher, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	if opts.Root == "" {
		opts.Root = DefaultRoot
	}

	if opts.Include == "" {
		opts.Include = DefaultInclude
	}

	include, err := glob.Compile(opts.Include, '/')
	if err != nil {
		return nil, fmt.Errorf("compile include glob %q: %w", opts.Include, err)
	}

	return &Patcher{rules: rules, opts: opts, include: include}, nil
}

// Candidates returns the files that will be examined, in walk order.
// A missing or unreadable root is a fatal error.
func (p *Patcher) Candidates() ([]string, error) {
	var files []string

	walkErr := filepath.WalkDir(p.opts.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(p.opts.Root, path)
		if relErr != nil {
			return relErr
		}

		if !p.include.Match(filepath.ToSlash(rel)) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scan %s: %w", p.opts.Root, walkErr)
	}

	return files, nil
}

// Run processes every candidate file and returns the run report.
// Zero matches is a normal outcome, not an error.
func (p *Patcher) Run() (*Report, error) {
	startedAt := time.Now()

	files, err := p.Candidates()
	if err != nil {
		return nil, err
	}

	report := NewReport(p.rules)

	for _, path := range files {
		if p.OnFile != nil {
			p.OnFile(path)
		}

		err = p.patchFile(path, report)
		if err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(startedAt)

	return report, nil
}

// patchFile reads one file, applies every rule, and writes the file back
// only when its content changed. Unchanged files are never rewritten, so
// timestamps stay put.
func (p *Patcher) patchFile(path string, report *Report) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	report.FilesScanned++
	report.BytesScanned += int64(len(raw))

	if textutil.IsBinary(raw) {
		report.SkippedBinary++

		return nil
	}

	content := string(raw)
	patched := content

	for i, rule := range p.rules {
		next := rule.Apply(patched)
		if next != patched {
			report.Results[i].FilesPatched++
		}

		patched = next
	}

	if patched == content {
		return nil
	}

	report.FilesPatched++

	if p.opts.CollectChanges {
		report.Changes = append(report.Changes, FileChange{Path: path, Before: content, After: patched})
	}

	if p.opts.DryRun {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	err = os.WriteFile(path, []byte(patched), info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
