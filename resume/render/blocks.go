package render

import "strings"

// BlockKind identifies how a block is laid out.
type BlockKind int

const (
	// BlockText is a paragraph that wraps within the margins.
	BlockText BlockKind = iota
	// BlockHeading is a section heading.
	BlockHeading
	// BlockLabeled is an inline run of Label (in LabelStyle) followed by Text.
	BlockLabeled
	// BlockBullets is an unordered list of Items.
	BlockBullets
	// BlockRule is a full-width horizontal line.
	BlockRule
)

// Block is one unit of vertical flow in an exported document. Sections produce
// blocks; the document appends them in order.
type Block struct {
	Kind        BlockKind
	Text        string
	Label       string
	Items       []string
	Style       Style
	LabelStyle  Style
	SpaceBefore float64
	SpaceAfter  float64
}

// PlainText is the visible text of the block.
func (b Block) PlainText() string {
	switch b.Kind {
	case BlockLabeled:
		return b.Label + b.Text
	case BlockBullets:
		return strings.Join(b.Items, "\n")
	default:
		return b.Text
	}
}
