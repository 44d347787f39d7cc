// Package checks contains the article QC checks.
// Import this package for its side effects to register every check:
//
//	import _ "github.com/kotoha-works/articleqc/pkg/qc/checks"
//
// Checks by group:
//
// Frontmatter:
//   - check_001: required fields present
//   - check_002: field types and formats
//
// Disclosure:
//   - check_003: PR/affiliate notation near the top
//
// CTA:
//   - check_004: exactly 3 CTAs
//   - check_005: CTA box structure (badge/button, nofollow+sponsored)
//
// Structure:
//   - check_006: exactly 5 level-2 headings
//   - check_007: FAQ section with >= 5 questions
//   - check_010: cost table in the first section
//   - check_011: table separator rows
//
// Content:
//   - check_008: minimum prose length
//   - check_013: area name frequency
//
// Style:
//   - check_009: forbidden wording
//   - check_012: polite register only
//
// Assets:
//   - check_014: OGP and thumbnail images exist
package checks
