package checks

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(FieldValues)
}

// FieldValues verifies the types and formats of frontmatter fields that
// are present. Absence itself is check_001's concern.
var FieldValues = qc.CheckDef{
	ID:          "check_002",
	Name:        "frontmatter.field_values",
	Group:       "frontmatter",
	Description: "Frontmatter fields must have valid types and formats.",
	Check:       checkFieldValues,
}

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateString renders a frontmatter date value for validation. An unquoted
// YAML date scalar decodes to a midnight time.Time; it must read back as
// the bare date the author wrote. A scalar with an explicit time keeps it,
// so a timestamp still fails the date-only format check.
func dateString(v any) string {
	t, ok := v.(time.Time)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

func checkFieldValues(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	var issues []string

	nonEmptyString := func(field string) {
		if !doc.Meta.Has(field) {
			return
		}
		s, ok := doc.Meta.String(field)
		if !ok || strings.TrimSpace(s) == "" {
			issues = append(issues, field+" empty or not string")
		}
	}

	nonEmptyString("title")
	nonEmptyString("description")

	if v, ok := doc.Meta["publishedAt"]; ok {
		val := dateString(v)
		if !dateRE.MatchString(val) {
			issues = append(issues, "publishedAt format: "+val)
		}
	}

	nonEmptyString("area")
	nonEmptyString("keyword")

	if doc.Meta.Has("keywords") {
		seq, ok := doc.Meta.Sequence("keywords")
		if !ok || len(seq) < 1 {
			issues = append(issues, "keywords not array or empty")
		}
	}

	if len(issues) > 0 {
		return qc.Verdict{Detail: strings.Join(issues, "; ")}
	}
	return qc.Verdict{Pass: true}
}
