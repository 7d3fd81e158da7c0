package render

// Align is the horizontal alignment of a block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignJustify
)

// colorRole names which palette entry a style draws with.
type colorRole int

const (
	roleText colorRole = iota
	rolePrimary
	roleAccent
)

// RunStyle captures the font formatting for one kind of line.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   float64
	Color  colorRole
	Align  Align
}

const (
	NameSize    = 24
	TitleSize   = 16
	HeadingSize = 14
	BodySize    = 10
)

// StyleMap centralizes the formatting of every CV element.
var StyleMap = map[string]RunStyle{
	"name":           {Bold: true, Size: NameSize, Color: roleText, Align: AlignCenter},
	"jobTitle":       {Size: TitleSize, Color: roleAccent, Align: AlignCenter},
	"contact":        {Size: BodySize, Color: roleText, Align: AlignCenter},
	"sectionHeading": {Bold: true, Size: HeadingSize, Color: rolePrimary},
	"summary":        {Size: 11, Color: roleText, Align: AlignJustify},
	"entryTitle":     {Bold: true, Size: 12, Color: roleText},
	"entrySubtitle":  {Size: 11, Color: rolePrimary},
	"roleTitle":      {Bold: true, Size: 11, Color: roleText},
	"organization":   {Size: BodySize, Color: rolePrimary},
	"meta":           {Italic: true, Size: BodySize, Color: roleText},
	"body":           {Size: BodySize, Color: roleText},
	"category":       {Bold: true, Size: 11, Color: rolePrimary},
	"rule":           {Size: 1, Color: rolePrimary},
}

// Style is a RunStyle with its colour resolved against a palette.
type Style struct {
	Bold   bool
	Italic bool
	Size   float64
	Color  RGB
	Align  Align
}

// Palette holds the resolved colours of one export.
type Palette struct {
	Primary RGB
	Accent  RGB
	Text    RGB
}

func (p Palette) style(name string) Style {
	rs := StyleMap[name]
	return Style{
		Bold:   rs.Bold,
		Italic: rs.Italic,
		Size:   rs.Size,
		Color:  p.color(rs.Color),
		Align:  rs.Align,
	}
}

func (p Palette) color(role colorRole) RGB {
	switch role {
	case rolePrimary:
		return p.Primary
	case roleAccent:
		return p.Accent
	default:
		return p.Text
	}
}
