package checks

import (
	"fmt"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(ForbiddenWords)
}

// ForbiddenWords flags absolute-claim superlatives and number-one claims
// that advertising review rejects.
var ForbiddenWords = qc.CheckDef{
	ID:          "check_009",
	Name:        "style.forbidden_words",
	Group:       "style",
	Description: "Body must not contain forbidden superlative/No.1 wording.",
	ConfigKeys:  []string{"forbidden_words"},
	Check:       checkForbiddenWords,
}

var defaultForbiddenWords = []string{
	"必ず", "絶対", "間違いなく", "最高", "No.1", "ナンバーワン", "一番",
}

func checkForbiddenWords(doc *article.Document, _ qc.Env, opts map[string]any) qc.Verdict {
	words := qc.GetStringSliceOption(opts, "forbidden_words", defaultForbiddenWords)

	var details []string
	for _, w := range words {
		if n := strings.Count(doc.Body, w); n > 0 {
			details = append(details, fmt.Sprintf("%s(%d)", w, n))
		}
	}
	if len(details) > 0 {
		return qc.Verdict{Details: details}
	}
	return qc.Verdict{Pass: true}
}
