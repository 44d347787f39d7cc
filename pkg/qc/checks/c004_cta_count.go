package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(CTACount)
}

// CTACount verifies the article carries exactly three calls to action,
// counting both inline cta-box containers and build-time CTA comments.
var CTACount = qc.CheckDef{
	ID:          "check_004",
	Name:        "cta.count",
	Group:       "cta",
	Description: "Exactly 3 CTAs (cta-box divs plus CTA comments).",
	Check:       checkCTACount,
}

const (
	ctaOpenTag  = `<div class="cta-box">`
	expectedCTA = 3
)

// ctaCommentRE matches the <!-- CTA: ... --> marker that a later build
// stage replaces with a rendered CTA.
var ctaCommentRE = regexp.MustCompile(`<!--\s*CTA:`)

func checkCTACount(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	divs := strings.Count(doc.Body, ctaOpenTag)
	comments := len(ctaCommentRE.FindAllString(doc.Body, -1))
	total := divs + comments

	if total == expectedCTA {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{
		Detail: fmt.Sprintf("CTA count: %d (div: %d, comment: %d)", total, divs, comments),
	}
}
