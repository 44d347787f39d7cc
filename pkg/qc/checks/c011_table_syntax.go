package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(TableSyntax)
}

// TableSyntax verifies every markdown table has a separator row directly
// under its header, so the table actually renders as a table.
var TableSyntax = qc.CheckDef{
	ID:          "check_011",
	Name:        "structure.table_syntax",
	Group:       "structure",
	Description: "Table headers must be followed by a separator row.",
	Check:       checkTableSyntax,
}

// maxTableIssues caps how many offending runs are reported.
const maxTableIssues = 3

var separatorRE = regexp.MustCompile(`-{2,}`)

func checkTableSyntax(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	lines := strings.Split(doc.Body, "\n")

	var issues []string
	inTable := false
	hasSeparator := false

	for i, line := range lines {
		if article.IsTableLine(line) {
			if !inTable {
				// First line of a run is the header; the next line
				// must be a separator row.
				inTable = true
				hasSeparator = false
				if i+1 < len(lines) {
					next := strings.TrimSpace(lines[i+1])
					if strings.HasPrefix(next, "|") && separatorRE.MatchString(next) {
						hasSeparator = true
					} else {
						issues = append(issues, fmt.Sprintf("line %d: table header not followed by separator", i+1))
					}
				}
			}
			continue
		}
		if inTable {
			inTable = false
			if !hasSeparator {
				issues = append(issues, fmt.Sprintf("table ending at line %d: no separator row found", i))
			}
		}
	}
	// A run that reaches EOF is not end-flagged; the header-side issue
	// already covers it when the separator was missing.

	if len(issues) > 0 {
		if len(issues) > maxTableIssues {
			issues = issues[:maxTableIssues]
		}
		return qc.Verdict{Detail: strings.Join(issues, "; ")}
	}
	return qc.Verdict{Pass: true}
}
