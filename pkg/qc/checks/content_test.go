package checks_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoha-works/articleqc/pkg/article"
	"github.com/kotoha-works/articleqc/pkg/qc/checks"
)

func TestCheck003_PRNotation(t *testing.T) {
	t.Run("affiliate disclosure near top", func(t *testing.T) {
		body := "※本記事にはアフィリエイト広告を含みます。\n\n本文です。"
		v := checks.PRNotation.Check(bodyDoc(body), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("bare PR token", func(t *testing.T) {
		v := checks.PRNotation.Check(bodyDoc("[PR] 記事本文です。"), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("disclosure beyond line 50 does not count", func(t *testing.T) {
		body := strings.Repeat("本文の行です。\n", 50) + "アフィリエイト広告を含みます。"
		v := checks.PRNotation.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "PR notation not found in first 50 lines", v.Detail)
	})

	t.Run("missing disclosure", func(t *testing.T) {
		v := checks.PRNotation.Check(bodyDoc("ただの本文です。"), testEnv(), nil)
		assert.False(t, v.Pass)
	})
}

func TestCheck008_ProseLength(t *testing.T) {
	t.Run("exactly 2500 passes", func(t *testing.T) {
		v := checks.ProseLength.Check(bodyDoc(strings.Repeat("あ", 2500)), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("2499 fails", func(t *testing.T) {
		v := checks.ProseLength.Check(bodyDoc(strings.Repeat("あ", 2499)), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "chars: 2499", v.Detail)
	})

	t.Run("full-width spaces do not pad the count", func(t *testing.T) {
		body := strings.Repeat("あ　", 2499)
		v := checks.ProseLength.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "chars: 2499", v.Detail)

		v = checks.ProseLength.Check(bodyDoc(body+"い"), testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("markup does not pad the count", func(t *testing.T) {
		body := strings.Repeat("あ", 2400) + strings.Repeat("<br> ## | ", 20)
		v := checks.ProseLength.Check(bodyDoc(body), testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "chars: 2400", v.Detail)
	})
}

func TestCheck013_AreaFrequency(t *testing.T) {
	meta := article.Frontmatter{"area": "Shibuya"}

	t.Run("three mentions pass", func(t *testing.T) {
		doc := &article.Document{Meta: meta, Body: "Shibuya Shibuya Shibuya"}
		v := checks.AreaFrequency.Check(doc, testEnv(), nil)
		assert.True(t, v.Pass)
	})

	t.Run("two mentions fail with count detail", func(t *testing.T) {
		doc := &article.Document{Meta: meta, Body: "Shibuya と Shibuya の話です。"}
		v := checks.AreaFrequency.Check(doc, testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "area 'Shibuya' count: 2", v.Detail)
	})

	t.Run("non-string area reads as absent", func(t *testing.T) {
		doc := &article.Document{Meta: article.Frontmatter{"area": 23}, Body: "23 23 23"}
		v := checks.AreaFrequency.Check(doc, testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "no area in frontmatter", v.Detail)
	})

	t.Run("missing area field", func(t *testing.T) {
		doc := &article.Document{Meta: article.Frontmatter{}, Body: "本文です。"}
		v := checks.AreaFrequency.Check(doc, testEnv(), nil)
		require.False(t, v.Pass)
		assert.Equal(t, "no area in frontmatter", v.Detail)
	})

	t.Run("japanese area name", func(t *testing.T) {
		doc := &article.Document{
			Meta: article.Frontmatter{"area": "渋谷区"},
			Body: "渋谷区の業者は渋谷区内で渋谷区民に人気です。",
		}
		v := checks.AreaFrequency.Check(doc, testEnv(), nil)
		assert.True(t, v.Pass)
	})
}
