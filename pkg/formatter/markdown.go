package formatter

import (
	"bufio"
	"strings"
)

// Summary is an outline of a style-guide document: its title and, for every
// second-level section, the third-level groups it holds with the number of
// values listed under each.
type Summary struct {
	Title    string
	Sections []Section
}

// Section is a "## " heading of the document.
type Section struct {
	Name   string
	Groups []Group
}

// Group is a "### " heading and the number of list items below it.
type Group struct {
	Name  string
	Items int
}

// Total returns the number of values listed in the section.
func (s Section) Total() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Items
	}
	return n
}

// Summarize builds the outline of a Markdown style guide. Placeholder items
// such as "- No text colors detected" are not counted.
func Summarize(doc string) Summary {
	var (
		sum     Summary
		section *Section
		group   *Group
	)

	scanner := bufio.NewScanner(strings.NewReader(doc))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "### "):
			if section == nil {
				sum.Sections = append(sum.Sections, Section{})
				section = &sum.Sections[len(sum.Sections)-1]
			}
			section.Groups = append(section.Groups, Group{Name: strings.TrimSpace(line[4:])})
			group = &section.Groups[len(section.Groups)-1]
		case strings.HasPrefix(line, "## "):
			sum.Sections = append(sum.Sections, Section{Name: strings.TrimSpace(line[3:])})
			section = &sum.Sections[len(sum.Sections)-1]
			group = nil
		case strings.HasPrefix(line, "# "):
			if sum.Title == "" {
				sum.Title = strings.TrimSpace(line[2:])
			}
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			if group != nil && !isPlaceholder(line[2:]) {
				group.Items++
			}
		}
	}

	return sum
}

func isPlaceholder(item string) bool {
	item = strings.ToLower(strings.TrimSpace(item))
	return strings.HasPrefix(item, "no ") && strings.HasSuffix(item, " detected")
}
