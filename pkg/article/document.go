package article

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the parsed YAML header of an article.
// Values are whatever the YAML decoder produced: strings, numbers,
// or []any for sequences. No schema is enforced at parse time;
// required fields are enforced by the checks.
type Frontmatter map[string]any

// Document is one article, read-only once constructed.
type Document struct {
	Meta Frontmatter
	Body string
	// Slug is the source filename without extension. It keys the
	// document in reports and names its expected image files.
	Slug string
}

const delimiter = "---"

// Parse splits raw article text into frontmatter and body.
//
// The frontmatter block is the text between a leading "---" and the next
// "---". A malformed or non-mapping block degrades to an empty Frontmatter
// rather than failing the parse; the field checks then report the missing
// fields explicitly. Text without a leading delimiter is all body.
func Parse(raw string, slug string) *Document {
	meta, body := splitFrontmatter(raw)
	return &Document{Meta: meta, Body: body, Slug: slug}
}

// ParseFile is Parse with the slug derived from a file path.
func ParseFile(raw string, path string) *Document {
	base := filepath.Base(path)
	slug := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(raw, slug)
}

func splitFrontmatter(raw string) (Frontmatter, string) {
	if !strings.HasPrefix(raw, delimiter) {
		return Frontmatter{}, strings.TrimSpace(raw)
	}

	end := strings.Index(raw[len(delimiter):], delimiter)
	if end < 0 {
		return Frontmatter{}, strings.TrimSpace(raw)
	}
	end += len(delimiter)

	header := strings.TrimSpace(raw[len(delimiter):end])
	body := strings.TrimSpace(raw[end+len(delimiter):])

	var meta Frontmatter
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil || meta == nil {
		return Frontmatter{}, body
	}
	return meta, body
}

// String returns the value of key as a string, with ok reporting whether
// the key exists and holds a string.
func (f Frontmatter) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Has reports whether key is present, regardless of its type.
func (f Frontmatter) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Sequence returns the value of key as a slice, with ok reporting whether
// the key exists and holds a YAML sequence.
func (f Frontmatter) Sequence(key string) ([]any, bool) {
	v, ok := f[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}
