package swiftgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMarkerNotFound is returned by Replace when the document has no case
// marker for the requested lesson id.
var ErrMarkerNotFound = errors.New("case marker not found")

// caseMarker anchors one replaceable span: a "case <id>:" arm of the
// bundled-content switch, at its fixed 8-space indentation. The terminal
// "default:" arm bounds the last replaceable span.
var caseMarker = regexp.MustCompile(`\n        (?:case (\d+)|default):`)

// segment is one contiguous span of the host file. id is the lesson id for
// case segments and -1 for the prelude and the default arm tail.
type segment struct {
	id   int
	text string
}

// Document is a course file parsed into marker-bounded segments. Spans are
// derived once at parse time, so replacements never re-derive offsets from
// partially patched text.
type Document struct {
	segments []segment
}

// ParseDocument splits the host file at its case markers. Each case
// segment runs from the newline that opens its marker up to the next
// marker (or end of file).
func ParseDocument(content string) *Document {
	matches := caseMarker.FindAllStringSubmatchIndex(content, -1)

	doc := &Document{}
	if len(matches) == 0 {
		doc.segments = []segment{{id: -1, text: content}}
		return doc
	}

	doc.segments = append(doc.segments, segment{id: -1, text: content[:matches[0][0]]})
	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		id := -1
		if m[2] >= 0 {
			id, _ = strconv.Atoi(content[m[2]:m[3]])
		}
		doc.segments = append(doc.segments, segment{id: id, text: content[m[0]:end]})
	}
	return doc
}

// Replace swaps the full span of one lesson's case arm for block. The block
// is expected to open with its own "\n        case <id>:" marker.
func (d *Document) Replace(id int, block string) error {
	for i, seg := range d.segments {
		if seg.id == id {
			d.segments[i].text = block
			return nil
		}
	}
	return fmt.Errorf("case %d: %w", id, ErrMarkerNotFound)
}

// String reassembles the document from its segments.
func (d *Document) String() string {
	var b strings.Builder
	for _, seg := range d.segments {
		b.WriteString(seg.text)
	}
	return b.String()
}
