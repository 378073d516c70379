package docsift

import "strings"

// BodyNode is one direct child of an article's body container, already
// materialized from the rendered DOM. The set of variants is closed:
// a node is either a HeadingBreak or a ContentNode.
type BodyNode interface {
	isBodyNode()
}

// HeadingBreak is a section boundary: a heading element whose visible text
// labels the section that follows it.
type HeadingBreak struct {
	Text string
}

func (HeadingBreak) isBodyNode() {}

// ContentNode is any non-heading child element. Text is the element's own
// visible text; Images holds the src attributes of embedded images in the
// order they appear inside the element.
type ContentNode struct {
	Text   string
	Images []string
}

func (ContentNode) isBodyNode() {}

// SegmentBody partitions the body container's direct children into ordered
// sections keyed by headings. Content preceding the first heading is labeled
// with IntroHeading; a heading that accumulates no content before the next
// boundary (or end of document) emits no section.
func SegmentBody(nodes []BodyNode) []Section {
	var sections []Section

	heading := IntroHeading
	var blocks []ContentBlock

	for _, n := range nodes {
		switch node := n.(type) {
		case HeadingBreak:
			if len(blocks) > 0 {
				sections = append(sections, Section{Heading: heading, Blocks: blocks})
				blocks = nil
			}
			heading = strings.TrimSpace(node.Text)
		case ContentNode:
			if text := strings.TrimSpace(node.Text); text != "" {
				blocks = append(blocks, TextBlock(text))
			}
			// Images are extracted independently of the text: an element
			// with no visible text still contributes its image references.
			for _, src := range node.Images {
				if src != "" {
					blocks = append(blocks, ImageBlock(src))
				}
			}
		}
	}

	if len(blocks) > 0 {
		sections = append(sections, Section{Heading: heading, Blocks: blocks})
	}

	return sections
}
