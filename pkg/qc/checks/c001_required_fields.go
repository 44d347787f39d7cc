package checks

import (
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(RequiredFields)
}

// RequiredFields verifies every required frontmatter field is present.
var RequiredFields = qc.CheckDef{
	ID:          "check_001",
	Name:        "frontmatter.required_fields",
	Group:       "frontmatter",
	Description: "All required frontmatter fields must be present.",
	ConfigKeys:  []string{"required_fields"},
	Check:       checkRequiredFields,
}

// defaultRequiredFields is the field set every article must carry.
var defaultRequiredFields = []string{
	"title", "description", "publishedAt", "category", "area", "keyword", "keywords",
}

func checkRequiredFields(doc *article.Document, _ qc.Env, opts map[string]any) qc.Verdict {
	required := qc.GetStringSliceOption(opts, "required_fields", defaultRequiredFields)

	var missing []string
	for _, field := range required {
		if !doc.Meta.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return qc.Verdict{Detail: "missing: " + strings.Join(missing, ", ")}
	}
	return qc.Verdict{Pass: true}
}
