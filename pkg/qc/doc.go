// Package qc is the article quality-check engine.
//
// Checks are data-driven CheckDef values registered from init() functions
// in pkg/qc/checks and stored in a global registry. The Evaluator runs
// every registered check against one document in fixed ID order; the
// Tally reduces many per-document results into a collection Summary.
//
// All checks are pure functions over (document, env, options), which makes
// per-document evaluation embarrassingly parallel and tally merging
// order-independent.
package qc
