package compose

import "strings"

// Block is a line range [Start, End) belonging to one service, where Start is
// the line carrying the service marker itself.
type Block struct {
	Start  int
	End    int
	Indent int // indentation of the marker line
}

// ServiceBlock locates the block of the service whose marker (e.g.
// "searxng:") appears on a line, bounding it at the first non-blank line at
// or below the marker's own indentation. Returns ok=false when the marker is
// absent.
//
// This is a textual approximation, not YAML semantics: it only tracks
// indentation depth, which is all the patches need.
func ServiceBlock(lines []string, marker string) (Block, bool) {
	for i, line := range lines {
		if !strings.Contains(line, marker) || strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		blk := Block{Start: i, Indent: indentOf(line), End: len(lines)}
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				continue
			}
			if indentOf(lines[j]) <= blk.Indent {
				blk.End = j
				break
			}
		}
		return blk, true
	}
	return Block{}, false
}
