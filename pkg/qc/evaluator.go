package qc

import "github.com/kotoha-works/articleqc/pkg/article"

// Evaluator runs the registered checks against documents.
type Evaluator struct {
	config *Config
}

// NewEvaluator creates an evaluator with optional configuration.
func NewEvaluator(config *Config) *Evaluator {
	if config == nil {
		config = NewConfig()
	}
	return &Evaluator{config: config}
}

// Evaluate runs every enabled check against doc in ID order and returns
// one verdict per check. Checks are pure, so evaluating the same document
// twice yields identical results. Evaluate does not recover from a
// panicking check; callers that process collections recover at the
// per-document granularity so one bad document cannot take down a batch.
func (e *Evaluator) Evaluate(doc *article.Document, env Env) Result {
	res := Result{Checks: make(map[string]Verdict, Count())}
	for _, def := range All() {
		if e.config.IsDisabled(def.ID) {
			continue
		}
		opts := e.config.GetCheckOptions(def.ID)
		res.Checks[def.ID] = def.Check(doc, env, opts)
	}
	return res
}
