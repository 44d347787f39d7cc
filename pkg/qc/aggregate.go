package qc

import (
	"fmt"
	"sort"
)

// FailFileLimit bounds the failing-document sample kept per check in a
// summary. The true failing total is reported alongside.
const FailFileLimit = 20

// CheckSummary is the collection-level outcome of one check.
type CheckSummary struct {
	Pass           int      `yaml:"pass" json:"pass"`
	Fail           int      `yaml:"fail" json:"fail"`
	PassRate       string   `yaml:"pass_rate" json:"pass_rate"`
	FailFiles      []string `yaml:"fail_files" json:"fail_files"`
	FailFilesTotal int      `yaml:"fail_files_total" json:"fail_files_total"`
}

// Overall sums every (document, check) evaluation in a collection.
type Overall struct {
	TotalPass int    `yaml:"total_pass" json:"total_pass"`
	TotalFail int    `yaml:"total_fail" json:"total_fail"`
	PassRate  string `yaml:"pass_rate" json:"pass_rate"`
}

// Summary is the aggregated report for a collection of documents.
type Summary struct {
	Checks  map[string]CheckSummary `yaml:"results" json:"results"`
	Overall Overall                 `yaml:"overall" json:"overall"`
	// Errors lists identifiers of documents that failed evaluation
	// outright. They contribute to no check counts.
	Errors []string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Tally accumulates per-document results into mergeable counts. Adding
// results and merging tallies are commutative and associative, so partial
// tallies from concurrent batches can be combined in any order; ordering
// of the output is imposed only when Summarize renders the Summary.
type Tally struct {
	pass      map[string]int
	fail      map[string]int
	failFiles map[string][]string
	errors    []string
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		pass:      make(map[string]int),
		fail:      make(map[string]int),
		failFiles: make(map[string][]string),
	}
}

// Add records one document's result under the given identifier.
func (t *Tally) Add(id string, res Result) {
	for checkID, v := range res.Checks {
		if v.Pass {
			t.pass[checkID]++
		} else {
			t.fail[checkID]++
			t.failFiles[checkID] = append(t.failFiles[checkID], id)
		}
	}
}

// AddError records a document that could not be evaluated. It is counted
// in the error tally only.
func (t *Tally) AddError(id string) {
	t.errors = append(t.errors, id)
}

// Merge folds other into t.
func (t *Tally) Merge(other *Tally) {
	for checkID, n := range other.pass {
		t.pass[checkID] += n
	}
	for checkID, n := range other.fail {
		t.fail[checkID] += n
	}
	for checkID, files := range other.failFiles {
		t.failFiles[checkID] = append(t.failFiles[checkID], files...)
	}
	t.errors = append(t.errors, other.errors...)
}

// Summarize renders the tally into a Summary covering every registered
// check. Failing-file samples are sorted before truncation so the summary
// is independent of the order documents were added or tallies merged.
func (t *Tally) Summarize() Summary {
	sum := Summary{Checks: make(map[string]CheckSummary, Count())}

	var totalPass, totalFail int
	for _, checkID := range IDs() {
		pass := t.pass[checkID]
		fail := t.fail[checkID]
		totalPass += pass
		totalFail += fail

		files := append([]string(nil), t.failFiles[checkID]...)
		sort.Strings(files)
		sample := files
		if len(sample) > FailFileLimit {
			sample = sample[:FailFileLimit]
		}

		sum.Checks[checkID] = CheckSummary{
			Pass:           pass,
			Fail:           fail,
			PassRate:       rate(pass, pass+fail, 0),
			FailFiles:      sample,
			FailFilesTotal: len(files),
		}
	}

	sum.Overall = Overall{
		TotalPass: totalPass,
		TotalFail: totalFail,
		PassRate:  rate(totalPass, totalPass+totalFail, 1),
	}

	errs := append([]string(nil), t.errors...)
	sort.Strings(errs)
	sum.Errors = errs

	return sum
}

// rate formats pass/total as a percentage with the given precision,
// or "N/A" when there is nothing to divide by.
func rate(pass, total, decimals int) string {
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.*f%%", decimals, float64(pass)/float64(total)*100)
}

// Aggregate reduces a map of per-document results into a Summary. It is a
// convenience over Tally for callers that already hold all results.
func Aggregate(results map[string]Result) Summary {
	t := NewTally()
	for id, res := range results {
		t.Add(id, res)
	}
	return t.Summarize()
}
