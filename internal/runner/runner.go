// Package runner discovers a site's articles, evaluates the QC checks
// against each of them, and assembles the site report.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

// Site directory layout, relative to <base>/<site>.
const (
	articlesSubdir = "src/content/area"
	imagesSubdir   = "public/images/articles"
)

// Options configures a Runner.
type Options struct {
	BaseDir string
	// Workers bounds concurrent document evaluation; 0 means NumCPU.
	Workers int
	// Config controls which checks run and their options.
	Config *qc.Config
	Logger *slog.Logger
	// Now supplies report timestamps; nil means time.Now.
	Now func() time.Time
}

// Runner evaluates site article collections.
type Runner struct {
	opts Options
}

// New creates a Runner.
func New(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Config == nil {
		opts.Config = qc.NewConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{opts: opts}
}

// SiteReport is the serialized per-site QC report.
type SiteReport struct {
	Site          string                     `yaml:"site" json:"site"`
	TotalArticles int                        `yaml:"total_articles" json:"total_articles"`
	Timestamp     string                     `yaml:"timestamp" json:"timestamp"`
	Results       map[string]qc.CheckSummary `yaml:"results" json:"results"`
	Overall       qc.Overall                 `yaml:"overall" json:"overall"`
	Errors        []string                   `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// RunSite evaluates every article of one site. Documents are independent,
// so evaluation fans out across workers; a document that cannot be read
// or evaluated is recorded as an error entry and never aborts the rest.
func (r *Runner) RunSite(ctx context.Context, site string) (*SiteReport, error) {
	siteDir := filepath.Join(r.opts.BaseDir, site)
	articlesDir := filepath.Join(siteDir, articlesSubdir)

	if fi, err := os.Stat(articlesDir); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("articles directory not found: %s", articlesDir)
	}

	files, err := discoverArticles(articlesDir)
	if err != nil {
		return nil, fmt.Errorf("discovering articles: %w", err)
	}
	r.opts.Logger.Info("checking site", "site", site, "articles", len(files))

	env := qc.OSEnv(filepath.Join(siteDir, imagesSubdir))
	evaluator := qc.NewEvaluator(r.opts.Config)
	tally := qc.NewTally()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			id := filepath.Base(path)
			res, err := r.evaluateFile(path, evaluator, env)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.opts.Logger.Warn("article failed", "file", id, "error", err)
				tally.AddError(id)
				return nil
			}
			tally.Add(id, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := tally.Summarize()
	return &SiteReport{
		Site:          site,
		TotalArticles: len(files),
		Timestamp:     r.opts.Now().Format(time.RFC3339),
		Results:       sum.Checks,
		Overall:       sum.Overall,
		Errors:        sum.Errors,
	}, nil
}

// evaluateFile reads and evaluates one article, converting a panicking
// check into an error so the caller can mark just this document.
func (r *Runner) evaluateFile(path string, evaluator *qc.Evaluator, env qc.Env) (res qc.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("evaluation panicked: %v", p)
		}
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		return qc.Result{}, err
	}
	doc := article.ParseFile(string(raw), path)
	return evaluator.Evaluate(doc, env), nil
}

// discoverArticles lists the site's article files: .md files in name
// order, then .mdx files in name order.
func discoverArticles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.md", "*.mdx"} {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}
