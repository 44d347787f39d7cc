package qc

import (
	"os"

	"github.com/kotoha-works/articleqc/pkg/article"
)

// Verdict is the outcome of one check against one document.
type Verdict struct {
	Pass   bool
	Detail string
	// Details carries multi-occurrence findings (counts per forbidden
	// word, matched sentence endings). When non-empty it takes the place
	// of Detail in serialized reports.
	Details []string
}

// MarshalYAML keeps the report shape stable: a "detail" key that is either
// a scalar or a list, matching what downstream report consumers expect.
func (v Verdict) MarshalYAML() (any, error) {
	detail := any(v.Detail)
	if len(v.Details) > 0 {
		detail = v.Details
	}
	return map[string]any{"pass": v.Pass, "detail": detail}, nil
}

// Env carries the collaborators a check may need beyond the document
// itself. Checks stay pure: everything they read comes in through the
// document or this value.
type Env struct {
	// ImagesDir is the site's article image directory.
	ImagesDir string
	// FileExists answers existence checks for the image check. Supplying
	// it as a predicate decouples the check from a concrete filesystem.
	FileExists func(path string) bool
}

// OSEnv returns an Env backed by the real filesystem.
func OSEnv(imagesDir string) Env {
	return Env{
		ImagesDir: imagesDir,
		FileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// CheckFunc evaluates one check against a document. The opts parameter
// contains check-specific options from configuration.
type CheckFunc func(doc *article.Document, env Env, opts map[string]any) Verdict

// CheckDef is a data-driven check definition. Checks are stateless; all
// context comes in via the function parameters.
type CheckDef struct {
	ID          string // report key, e.g. "check_006"
	Name        string // human-readable name, e.g. "structure.heading_count"
	Group       string // category, e.g. "frontmatter", "structure", "style"
	Description string
	ConfigKeys  []string // configuration keys this check accepts
	Check       CheckFunc
}

// Result is the per-document report: one verdict per check ID.
type Result struct {
	Checks map[string]Verdict
}

// GetStringSliceOption reads a []string option from opts, accepting both
// []string and []any values, falling back to def when absent or invalid.
func GetStringSliceOption(opts map[string]any, key string, def []string) []string {
	v, ok := opts[key]
	if !ok {
		return def
	}
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	default:
		return def
	}
}
