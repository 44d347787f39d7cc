package checks

import (
	"fmt"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(CostTable)
}

// CostTable verifies the first level-2 section contains a cost comparison
// table: header, separator, and at least two data rows.
var CostTable = qc.CheckDef{
	ID:          "check_010",
	Name:        "structure.cost_table",
	Group:       "structure",
	Description: "First level-2 section must contain a table (>= 4 table lines).",
	Check:       checkCostTable,
}

const minCostTableLines = 4

func checkCostTable(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	sections := article.Sections(doc.Body)
	if len(sections) == 0 {
		return qc.Verdict{Detail: "no H2 sections"}
	}

	count := 0
	for _, line := range strings.Split(sections[0].Content, "\n") {
		if article.IsTableLine(line) {
			count++
		}
	}
	if count >= minCostTableLines {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{Detail: fmt.Sprintf("table lines in H2-1: %d", count)}
}
