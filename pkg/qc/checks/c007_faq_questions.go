package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(FAQQuestions)
}

// FAQQuestions verifies the FAQ section holds at least five questions.
// The section is found by heading keyword; articles that name it
// differently fall back to the conventional 4th level-2 section rather
// than failing outright, since these collections are human-authored.
var FAQQuestions = qc.CheckDef{
	ID:          "check_007",
	Name:        "structure.faq_questions",
	Group:       "structure",
	Description: "The FAQ section must contain at least 5 questions.",
	Check:       checkFAQQuestions,
}

const (
	minFAQQuestions = 5
	// faqFallbackIndex is the position of the FAQ section when no
	// heading matches (0-based: the 4th section).
	faqFallbackIndex = 3
)

var faqQuestionRE = regexp.MustCompile(`(?m)^#{3,4} .+`)

func checkFAQQuestions(doc *article.Document, _ qc.Env, _ map[string]any) qc.Verdict {
	sections := article.Sections(doc.Body)

	var faq string
	for _, s := range sections {
		if strings.Contains(s.Heading, "FAQ") || strings.Contains(s.Heading, "よくある質問") {
			faq = s.Content
			break
		}
	}
	if faq == "" && len(sections) > faqFallbackIndex {
		faq = sections[faqFallbackIndex].Content
	}
	if faq == "" {
		return qc.Verdict{Detail: "FAQ section not found"}
	}

	count := len(faqQuestionRE.FindAllString(faq, -1))
	if count >= minFAQQuestions {
		return qc.Verdict{Pass: true}
	}
	return qc.Verdict{Detail: fmt.Sprintf("FAQ questions: %d", count)}
}
