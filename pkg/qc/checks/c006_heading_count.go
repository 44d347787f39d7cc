package checks

import (
	"fmt"
	"regexp"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(HeadingCount)
}

// HeadingCount verifies the article has exactly five level-2 sections,
// the fixed outline every article in these collections follows.
var HeadingCount = qc.CheckDef{
	ID:          "check_006",
	Name:        "structure.heading_count",
	Group:       "structure",
	Description: "Exactly 5 level-2 headings.",
	Check:       checkHeadingCount,
}

const expectedH2 = 5

var h2RE = regexp.MustCompile(`(?m)^## .+`)

func checkHeadingCount(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	count := len(h2RE.FindAllString(doc.Body, -1))
	if count == expectedH2 {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{Detail: fmt.Sprintf("H2 count: %d", count)}
}
