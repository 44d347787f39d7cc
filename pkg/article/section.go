package article

import "strings"

// Section is one level-2 heading and the text that follows it, up to the
// next level-2 heading.
type Section struct {
	// Heading is the full heading line, marker included ("## 費用相場").
	Heading string
	// Content is the joined lines between this heading and the next one.
	Content string
}

const h2Prefix = "## "

// Sections splits body into its level-2 sections. Lines before the first
// level-2 heading belong to no section. The split is a pure function of
// body; recomputing it always yields the same result.
func Sections(body string) []Section {
	var (
		sections []Section
		heading  string
		lines    []string
		open     bool
	)

	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, h2Prefix) {
			if open {
				sections = append(sections, Section{Heading: heading, Content: strings.Join(lines, "\n")})
			}
			heading = line
			lines = nil
			open = true
			continue
		}
		if open {
			lines = append(lines, line)
		}
	}
	if open {
		sections = append(sections, Section{Heading: heading, Content: strings.Join(lines, "\n")})
	}
	return sections
}
