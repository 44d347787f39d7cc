package checks

import (
	"regexp"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(WritingStyle)
}

// WritingStyle verifies the article sticks to the polite です・ます
// register and contains no plain-register (常体) sentence endings.
var WritingStyle = qc.CheckDef{
	ID:          "check_012",
	Name:        "style.writing_style",
	Group:       "style",
	Description: "No plain-register (常体) sentence endings.",
	Check:       checkWritingStyle,
}

// jotaiRE matches plain-register endings. The [^い]だ。 alternative
// exempts any 〜いだ。 ending (泳いだ。, 嫌いだ。); this one-character
// lookback is a deliberate narrow heuristic, not grammatical analysis,
// and changing it would shift verdicts on existing articles.
var jotaiRE = regexp.MustCompile(`である。|であろう。|[^い]だ。`)

// maxStyleFindings caps how many matches are reported.
const maxStyleFindings = 5

func checkWritingStyle(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	clean := article.StripTags(doc.Body)
	matches := jotaiRE.FindAllString(clean, -1)
	if len(matches) == 0 {
		return qc.Verdict{Pass: true}
	}
	if len(matches) > maxStyleFindings {
		matches = matches[:maxStyleFindings]
	}
	return qc.Verdict{Detail: "常体 found", Details: matches}
}
