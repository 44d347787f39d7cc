package qc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoha-works/articleqc/pkg/qc"
	_ "github.com/kotoha-works/articleqc/pkg/qc/checks"
)

// resultWith builds a Result where the listed check IDs fail and every
// other registered check passes.
func resultWith(failing ...string) qc.Result {
	failSet := make(map[string]bool, len(failing))
	for _, id := range failing {
		failSet[id] = true
	}
	res := qc.Result{Checks: make(map[string]qc.Verdict)}
	for _, id := range qc.IDs() {
		res.Checks[id] = qc.Verdict{Pass: !failSet[id]}
	}
	return res
}

func TestAggregateCounts(t *testing.T) {
	sum := qc.Aggregate(map[string]qc.Result{
		"a.md": resultWith(),
		"b.md": resultWith("check_008"),
		"c.md": resultWith("check_008", "check_012"),
	})

	cs := sum.Checks["check_008"]
	assert.Equal(t, 1, cs.Pass)
	assert.Equal(t, 2, cs.Fail)
	assert.Equal(t, "33%", cs.PassRate)
	assert.Equal(t, []string{"b.md", "c.md"}, cs.FailFiles)
	assert.Equal(t, 2, cs.FailFilesTotal)

	cs = sum.Checks["check_001"]
	assert.Equal(t, 3, cs.Pass)
	assert.Equal(t, "100%", cs.PassRate)
	assert.Empty(t, cs.FailFiles)

	n := len(qc.IDs())
	assert.Equal(t, 3*n-3, sum.Overall.TotalPass)
	assert.Equal(t, 3, sum.Overall.TotalFail)
	assert.Equal(t, fmt.Sprintf("%.1f%%", float64(3*n-3)/float64(3*n)*100), sum.Overall.PassRate)
}

func TestAggregateEmptyCollection(t *testing.T) {
	sum := qc.Aggregate(nil)

	require.Len(t, sum.Checks, len(qc.IDs()))
	for id, cs := range sum.Checks {
		assert.Equal(t, "N/A", cs.PassRate, id)
		assert.Zero(t, cs.Pass)
		assert.Zero(t, cs.Fail)
	}
	assert.Equal(t, "N/A", sum.Overall.PassRate)
}

func TestTallyMergeOrderIndependent(t *testing.T) {
	add := func(t *qc.Tally, ids ...string) {
		for _, id := range ids {
			t.Add(id, resultWith("check_006"))
		}
	}

	left := qc.NewTally()
	add(left, "c.md", "a.md")
	right := qc.NewTally()
	add(right, "b.md")
	left.Merge(right)

	other := qc.NewTally()
	add(other, "b.md", "a.md", "c.md")

	assert.Equal(t, other.Summarize(), left.Summarize())
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, left.Summarize().Checks["check_006"].FailFiles)
}

func TestSummarizeCapsFailFileSample(t *testing.T) {
	tally := qc.NewTally()
	for i := 0; i < qc.FailFileLimit+5; i++ {
		tally.Add(fmt.Sprintf("doc-%02d.md", i), resultWith("check_004"))
	}

	cs := tally.Summarize().Checks["check_004"]
	assert.Len(t, cs.FailFiles, qc.FailFileLimit)
	assert.Equal(t, qc.FailFileLimit+5, cs.FailFilesTotal)
	assert.Equal(t, qc.FailFileLimit+5, cs.Fail)
	// Sorted before truncation, so the sample is the lexicographically
	// first slice of the full failing set.
	assert.Equal(t, "doc-00.md", cs.FailFiles[0])
	assert.Equal(t, "doc-19.md", cs.FailFiles[qc.FailFileLimit-1])
}

func TestTallyErrors(t *testing.T) {
	tally := qc.NewTally()
	tally.Add("ok.md", resultWith())
	tally.AddError("broken.md")
	tally.AddError("also-broken.md")

	sum := tally.Summarize()
	assert.Equal(t, []string{"also-broken.md", "broken.md"}, sum.Errors)
	assert.Equal(t, len(qc.IDs()), sum.Overall.TotalPass)
	assert.Zero(t, sum.Overall.TotalFail)
}
