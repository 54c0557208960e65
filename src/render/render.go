// Package render decomposes generated text into display blocks: one
// block per line, each an ordered list of plain and link segments.
package render

import (
	"regexp"
	"strings"
)

// linkPattern matches a single [label](target) pair: no nested brackets,
// non-greedy by construction of the character classes. Partial or
// unmatched syntax never matches and stays literal text.
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Segment is one run of a display block. Target is empty for plain text.
type Segment struct {
	Text   string // plain text, empty for links
	Label  string // link label
	Target string // link target, e.g. /agent/1
}

// IsLink reports whether the segment is a resolved link.
func (s Segment) IsLink() bool { return s.Target != "" }

// Block is the rendering-ready form of one line of generated text.
type Block struct {
	Segments []Segment
}

// Render splits raw text on newlines and scans each line for inline
// links. It is pure and idempotent: the same input always yields the
// same block sequence.
func Render(raw string) []Block {
	lines := strings.Split(raw, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, renderLine(line))
	}
	return blocks
}

func renderLine(line string) Block {
	matches := linkPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return Block{Segments: []Segment{{Text: line}}}
	}

	var segments []Segment
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segments = append(segments, Segment{Text: line[prev:m[0]]})
		}
		segments = append(segments, Segment{
			Label:  line[m[2]:m[3]],
			Target: line[m[4]:m[5]],
		})
		prev = m[1]
	}
	if prev < len(line) {
		segments = append(segments, Segment{Text: line[prev:]})
	}
	return Block{Segments: segments}
}
