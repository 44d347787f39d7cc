package checks

import (
	"fmt"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(AreaFrequency)
}

// AreaFrequency verifies the article actually talks about its target
// area: the frontmatter area value must appear in the body at least
// three times.
var AreaFrequency = qc.CheckDef{
	ID:          "check_013",
	Name:        "content.area_frequency",
	Group:       "content",
	Description: "The frontmatter area name must appear >= 3 times in the body.",
	Check:       checkAreaFrequency,
}

const minAreaMentions = 3

func checkAreaFrequency(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	area, _ := doc.Meta.String("area")
	if area == "" {
		return qc.Verdict{Detail: "no area in frontmatter"}
	}

	count := strings.Count(doc.Body, area)
	if count >= minAreaMentions {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{Detail: fmt.Sprintf("area '%s' count: %d", area, count)}
}
