package checks

import (
	"path/filepath"
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

func init() {
	qc.Register(Images)
}

// Images verifies the OGP and thumbnail images exist for the article.
// Existence goes through the env predicate; a missing file is a normal
// fail verdict, never an error.
var Images = qc.CheckDef{
	ID:          "check_014",
	Name:        "assets.images",
	Group:       "assets",
	Description: "OGP and thumbnail images must exist for the article slug.",
	Check:       checkImages,
}

func checkImages(doc *article.Document, env qc.Env, _ map[string]any) qc.Verdict {
	exists := env.FileExists
	if exists == nil {
		exists = func(string) bool { return false }
	}

	var missing []string
	if !exists(filepath.Join(env.ImagesDir, doc.Slug+"-ogp.png")) {
		missing = append(missing, "ogp")
	}
	if !exists(filepath.Join(env.ImagesDir, doc.Slug+"-thumb.png")) {
		missing = append(missing, "thumb")
	}

	if len(missing) > 0 {
		return qc.Verdict{Detail: "missing: " + strings.Join(missing, ", ")}
	}
	return qc.Verdict{Pass: true}
}
