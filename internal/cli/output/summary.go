package output

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kotoha-works/articleqc/internal/runner"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

// checkNames maps check IDs to the short Japanese labels used in the
// console summary.
var checkNames = map[string]string{
	"check_001": "frontmatter存在",
	"check_002": "frontmatter型",
	"check_003": "PR表記",
	"check_004": "CTA×3",
	"check_005": "CTA構造",
	"check_006": "H2×5",
	"check_007": "FAQ 5問",
	"check_008": "2500文字↑",
	"check_009": "禁止語なし",
	"check_010": "費用テーブル",
	"check_011": "md構文",
	"check_012": "です・ます",
	"check_013": "地域名出現",
	"check_014": "画像存在",
}

// SiteSummary prints the per-site summary table. Checks with a pass rate
// under 50% get a "!!" marker.
func (r *Renderer) SiteSummary(report *runner.SiteReport) {
	r.Println("")
	title := fmt.Sprintf("%s (%d articles)  —  Overall: %s",
		report.Site, report.TotalArticles, report.Overall.PassRate)
	r.Println("  " + r.styles.Title.Render(title))

	ids := make([]string, 0, len(report.Results))
	for id := range report.Results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Check", "Pass", "Fail", "Rate", ""})

	for _, id := range ids {
		res := report.Results[id]
		name := checkNames[id]
		if name == "" {
			name = id
		}
		t.AppendRow(table.Row{name, res.Pass, res.Fail, res.PassRate, failMarker(res)})
	}
	t.Render()

	if len(report.Errors) > 0 {
		r.Println(r.styles.Error.Render(fmt.Sprintf("  %d articles could not be evaluated", len(report.Errors))))
	}
	r.Println("")
}

// failMarker flags checks failing for most documents.
func failMarker(res qc.CheckSummary) string {
	total := res.Pass + res.Fail
	if res.Fail > 0 && total > 0 && float64(res.Pass)/float64(total) < 0.5 {
		return "!!"
	}
	return ""
}

// GrandTotal prints the combined pass rate across several site reports.
func (r *Renderer) GrandTotal(reports []*runner.SiteReport) {
	var articles, pass, fail int
	for _, rep := range reports {
		articles += rep.TotalArticles
		pass += rep.Overall.TotalPass
		fail += rep.Overall.TotalFail
	}

	r.Println("  " + r.styles.Title.Render(fmt.Sprintf("GRAND TOTAL (%d articles)", articles)))
	if pass+fail == 0 {
		r.Println("  No data")
		return
	}
	r.Printf("  Overall pass rate: %.1f%%\n", float64(pass)/float64(pass+fail)*100)
}
