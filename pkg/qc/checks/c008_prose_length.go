package checks

import (
	"fmt"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(ProseLength)
}

// ProseLength verifies the article body is long enough once markup noise
// is excluded.
var ProseLength = qc.CheckDef{
	ID:          "check_008",
	Name:        "content.prose_length",
	Group:       "content",
	Description: "Body must contain at least 2500 prose characters.",
	Check:       checkProseLength,
}

const minProseLength = 2500

func checkProseLength(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	n := article.ProseLength(doc.Body)
	if n >= minProseLength {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{Detail: fmt.Sprintf("chars: %d", n)}
}
