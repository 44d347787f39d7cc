package checks_test

import (
	"strings"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc"
)

// testEnv returns an Env whose image lookups always succeed.
func testEnv() qc.Env {
	return qc.Env{
		ImagesDir:  "/sites/gaichuu/public/images/articles",
		FileExists: func(string) bool { return true },
	}
}

// bodyDoc wraps a bare body in a Document with empty metadata.
func bodyDoc(body string) *article.Document {
	return &article.Document{Meta: article.Frontmatter{}, Body: body, Slug: "test-doc"}
}

const ctaBlock = `<div class="cta-box">
  <div class="cta-inner">
    <span class="cta-badge">PR</span>
    <a href="https://example.com/offer" rel="nofollow sponsored" class="cta-button">公式サイトはこちら</a>
  </div>
</div>`

// validMeta is a frontmatter block satisfying check_001 and check_002.
func validMeta() article.Frontmatter {
	return article.Frontmatter{
		"title":       "渋谷区のハチ駆除業者おすすめ",
		"description": "渋谷区でハチ駆除を依頼するときの費用相場と業者の選び方を解説します。",
		"publishedAt": "2025-04-01",
		"category":    "area",
		"area":        "渋谷区",
		"keyword":     "渋谷区 ハチ駆除",
		"keywords":    []any{"渋谷区", "ハチ駆除"},
	}
}

// validBody builds an article body that passes every body-level check:
// disclosure near the top, exactly five level-2 sections, a cost table in
// the first, an FAQ with five questions, three structurally sound CTAs,
// enough prose, the area name repeated, and polite register throughout.
func validBody() string {
	filler := "渋谷区で" + strings.Repeat("業者を選ぶときは、実績と口コミを確認して比較することが大切です。", 22)

	costTable := `| 項目 | 費用相場 |
|------|------|
| 基本料金 | 8000円 |
| 追加作業 | 3000円 |`

	faq := `### 依頼から作業までの流れを教えてください
予約から最短で数日で対応してもらえます。

### 費用はどのくらいかかりますか
作業内容によって変わります。

### 追加料金が発生することはありますか
事前の見積もりで確認できます。

### 即日対応はできますか
業者によっては可能です。

### 支払い方法は選べますか
多くの業者で現金とカードに対応しています。`

	var b strings.Builder
	b.WriteString("※本記事にはアフィリエイト広告を含みます。\n\n")
	b.WriteString("## 渋谷区の費用相場\n" + costTable + "\n\n" + filler + "\n\n")
	b.WriteString("## 業者の選び方\n" + filler + "\n\n" + ctaBlock + "\n\n")
	b.WriteString("## おすすめのサービス\n" + filler + "\n\n" + ctaBlock + "\n\n")
	b.WriteString("## よくある質問\n" + faq + "\n\n")
	b.WriteString("## まとめ\n" + filler + "\n\n" + ctaBlock + "\n")
	return b.String()
}

// validDoc is a document that passes all fourteen checks under testEnv.
func validDoc() *article.Document {
	return &article.Document{Meta: validMeta(), Body: validBody(), Slug: "shibuya-hachi"}
}
