// Package article models SEO articles: YAML frontmatter plus a markdown
// body, and the structural views the QC checks evaluate (level-2 sections,
// normalized prose length, table lines).
package article
