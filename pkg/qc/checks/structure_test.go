package checks_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoha-works/articleqc/pkg/qc/checks"
)

func h2Body(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "## セクション%d\n本文です。\n\n", i)
	}
	return b.String()
}

func TestCheck006_HeadingCount(t *testing.T) {
	tests := []struct {
		name string
		body string
		pass bool
		want string
	}{
		{name: "exactly five", body: h2Body(5), pass: true},
		{name: "four", body: h2Body(4), want: "H2 count: 4"},
		{name: "six", body: h2Body(6), want: "H2 count: 6"},
		{name: "none", body: "見出しなし。", want: "H2 count: 0"},
		{name: "h3 does not count", body: h2Body(5) + "### 小見出し\n", pass: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := checks.HeadingCount.Check(bodyDoc(tt.body), testEnv(), nil)
			assert.Equal(t, tt.pass, v.Pass)
			if !tt.pass {
				assert.Equal(t, tt.want, v.Detail)
			}
		})
	}
}

func TestCheck007_FAQQuestions(t *testing.T) {
	questions := func(n int) string {
		var b strings.Builder
		for i := 1; i <= n; i++ {
			fmt.Fprintf(&b, "### 質問%dです\n回答です。\n", i)
		}
		return b.String()
	}

	t.Run("found by heading keyword", func(t *testing.T) {
		body := "## よくある質問\n" + questions(5)
		v := checks.FAQQuestions.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("found by english FAQ keyword", func(t *testing.T) {
		body := "## FAQ\n" + questions(5)
		v := checks.FAQQuestions.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("falls back to 4th section", func(t *testing.T) {
		body := h2Body(3) + "## 質疑応答\n" + questions(5) + "\n" + "## まとめ\n締めです。\n"
		v := checks.FAQQuestions.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass, "4th section is used when no heading matches")
	})

	t.Run("too few questions", func(t *testing.T) {
		body := "## よくある質問\n" + questions(3)
		v := checks.FAQQuestions.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "FAQ questions: 3", v.Detail)
	})

	t.Run("level-4 headings count as questions", func(t *testing.T) {
		body := "## よくある質問\n#### 深い質問です\n" + questions(4)
		v := checks.FAQQuestions.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("no sections at all", func(t *testing.T) {
		v := checks.FAQQuestions.Check(bodyDoc("本文のみです。"), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "FAQ section not found", v.Detail)
	})
}

func TestCheck010_CostTable(t *testing.T) {
	t.Run("four table lines pass", func(t *testing.T) {
		body := `## 費用相場
| 項目 | 費用 |
|------|------|
| 基本 | 8000円 |
| 追加 | 3000円 |

## その他
本文です。`
		v := checks.CostTable.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("too few table lines", func(t *testing.T) {
		body := "## 費用相場\n| 項目 | 費用 |\n|------|------|\n"
		v := checks.CostTable.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "table lines in H2-1: 2", v.Detail)
	})

	t.Run("table outside first section does not count", func(t *testing.T) {
		body := "## 概要\n本文です。\n\n## 費用相場\n| a |\n| b |\n| c |\n| d |\n"
		v := checks.CostTable.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "table lines in H2-1: 0", v.Detail)
	})

	t.Run("no sections", func(t *testing.T) {
		v := checks.CostTable.Check(bodyDoc("本文のみです。"), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "no H2 sections", v.Detail)
	})
}

func TestCheck011_TableSyntax(t *testing.T) {
	t.Run("header separator data", func(t *testing.T) {
		body := "| a | b |\n|---|---|\n| 1 | 2 |"
		v := checks.TableSyntax.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("header followed by non-separator", func(t *testing.T) {
		body := "| a | b |\nただの文章です。\n"
		v := checks.TableSyntax.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Contains(t, v.Detail, "line 1: table header not followed by separator")
	})

	t.Run("header followed by data row", func(t *testing.T) {
		body := "| a | b |\n| 1 | 2 |\n"
		v := checks.TableSyntax.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Contains(t, v.Detail, "table header not followed by separator")
	})

	t.Run("issues capped at three", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 5; i++ {
			b.WriteString("| 表 |\n文章。\n")
		}
		v := checks.TableSyntax.Check(bodyDoc(b.String()), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, 3, strings.Count(v.Detail, ";")+1, "detail holds at most 3 issues")
	})

	t.Run("multiple valid tables", func(t *testing.T) {
		body := "| a |\n|---|\n| 1 |\n\n| b |\n|---|\n| 2 |"
		v := checks.TableSyntax.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("no tables", func(t *testing.T) {
		v := checks.TableSyntax.Check(bodyDoc("表のない本文です。"), testEnv(), nil)
		assert.True(t, v.Pass)
	})
}
