package checks

import (
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(PRNotation)
}

// PRNotation verifies an affiliate disclosure appears near the top of the
// article, as advertising guidelines require.
var PRNotation = qc.CheckDef{
	ID:          "check_003",
	Name:        "disclosure.pr_notation",
	Group:       "disclosure",
	Description: "An affiliate/PR disclosure must appear within the first 50 lines.",
	Check:       checkPRNotation,
}

// prScanLines is how far into the body the disclosure may appear.
const prScanLines = 50

var disclosureTokens = []string{"アフィリエイト広告", "PR"}

func checkPRNotation(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	lines := strings.Split(doc.Body, "\n")
	if len(lines) > prScanLines {
		lines = lines[:prScanLines]
	}
	head := strings.Join(lines, "\n")

	for _, token := range disclosureTokens {
		if strings.Contains(head, token) {
			return qc.Verdict{Pass: true}
		}
	}
	return qc.Verdict{Detail: "PR notation not found in first 50 lines"}
}
