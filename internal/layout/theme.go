package layout

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/porticus-lab/go-project-pdf/internal/document"
)

// Named colors used by the default theme.
const (
	ColorBlack     = "#000000"
	ColorDarkBlue  = "#00008b"
	ColorDarkGreen = "#006400"
	ColorPurple    = "#800080"
	ColorLightBlue = "#add8e6"
	ColorBeige     = "#f5f5dc"
)

// Font stacks. Chrome substitutes metric-compatible fonts when the PostScript
// base fonts are not installed.
const (
	FontSans = `Helvetica, Arial, "Liberation Sans", sans-serif`
	FontMono = `Courier, "Courier New", "Liberation Mono", monospace`
)

// ParagraphStyle describes how one named style is drawn. Sizes are in points.
type ParagraphStyle struct {
	FontFamily  string
	FontSize    float64
	Leading     float64
	Bold        bool
	Italic      bool
	Color       string
	Center      bool
	LeftIndent  float64
	SpaceBefore float64
	SpaceAfter  float64
}

// TableStyle describes the summary table.
type TableStyle struct {
	HeaderBackground    string
	HeaderColor         string
	HeaderFontSize      float64
	HeaderBottomPadding float64
	BodyBackground      string
	GridColor           string
	GridWidth           float64
}

// Theme is the complete set of styles used to lay out a document. A Theme
// is built once and only read afterwards; [DefaultTheme] returns a fresh
// value on every call.
type Theme struct {
	styles map[document.Style]ParagraphStyle
	table  TableStyle
}

// NewTheme creates a Theme from the given styles. The map is copied.
func NewTheme(styles map[document.Style]ParagraphStyle, table TableStyle) Theme {
	return Theme{styles: maps.Clone(styles), table: table}
}

// DefaultTheme returns the built-in theme: Helvetica headings and labels in
// dark blue, dark green and purple, and an 8pt Courier listing.
func DefaultTheme() Theme {
	const codeSize = 8
	const lineHeight = 1.0

	return NewTheme(map[document.Style]ParagraphStyle{
		document.StyleTitle: {
			FontFamily: FontSans, FontSize: 18, Leading: 22, Bold: true,
			Color: ColorBlack, Center: true, SpaceAfter: 6,
		},
		document.StyleHeading2: {
			FontFamily: FontSans, FontSize: 14, Leading: 18, Bold: true,
			Color: ColorBlack, SpaceBefore: 12, SpaceAfter: 6,
		},
		document.StyleHeading3: {
			FontFamily: FontSans, FontSize: 12, Leading: 14.4, Bold: true, Italic: true,
			Color: ColorBlack, SpaceBefore: 12, SpaceAfter: 6,
		},
		document.StyleStructureHeader: {
			FontFamily: FontSans, FontSize: 14, Leading: 16.8, Bold: true,
			Color: ColorDarkBlue, Center: true, SpaceBefore: 20, SpaceAfter: 10,
		},
		document.StyleDirItem: {
			FontFamily: FontSans, FontSize: 10, Leading: 12,
			Color: ColorDarkBlue, LeftIndent: 10, SpaceAfter: 2,
		},
		document.StyleFileItem: {
			FontFamily: FontSans, FontSize: 10, Leading: 12,
			Color: ColorDarkGreen, LeftIndent: 20, SpaceAfter: 2,
		},
		document.StyleCodeHeader: {
			FontFamily: FontSans, FontSize: 10, Leading: 12, Bold: true,
			Color: ColorDarkBlue, SpaceAfter: 4,
		},
		document.StyleSummaryItem: {
			FontFamily: FontSans, FontSize: 10, Leading: 12, Bold: true,
			Color: ColorPurple, SpaceAfter: 5,
		},
		document.StyleCode: {
			FontFamily: FontMono, FontSize: codeSize, Leading: codeSize * lineHeight,
			Color: ColorBlack, SpaceBefore: 6, SpaceAfter: 6,
		},
	}, TableStyle{
		HeaderBackground:    ColorLightBlue,
		HeaderColor:         ColorBlack,
		HeaderFontSize:      10,
		HeaderBottomPadding: 12,
		BodyBackground:      ColorBeige,
		GridColor:           ColorBlack,
		GridWidth:           1,
	})
}

// Style returns the named style and whether the theme defines it.
func (t Theme) Style(name document.Style) (ParagraphStyle, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// Table returns the table style.
func (t Theme) Table() TableStyle {
	return t.table
}

// CSS returns the stylesheet for the theme. Style names become class names.
func (t Theme) CSS() string {
	var sb strings.Builder
	sb.WriteString(baseCSS)

	names := slices.Sorted(maps.Keys(t.styles))
	for _, name := range names {
		s := t.styles[name]
		fmt.Fprintf(&sb, ".%s {\n", name)
		fmt.Fprintf(&sb, "  font-family: %s;\n", s.FontFamily)
		fmt.Fprintf(&sb, "  font-size: %spt;\n", num(s.FontSize))
		if s.Leading > 0 {
			fmt.Fprintf(&sb, "  line-height: %spt;\n", num(s.Leading))
		}
		if s.Bold {
			sb.WriteString("  font-weight: bold;\n")
		}
		if s.Italic {
			sb.WriteString("  font-style: italic;\n")
		}
		if s.Color != "" {
			fmt.Fprintf(&sb, "  color: %s;\n", s.Color)
		}
		if s.Center {
			sb.WriteString("  text-align: center;\n")
		}
		fmt.Fprintf(&sb, "  margin: %spt %spt %spt %spt;\n", num(s.SpaceBefore), num(0), num(s.SpaceAfter), num(s.LeftIndent))
		sb.WriteString("}\n")
	}

	tb := t.table
	fmt.Fprintf(&sb, "table.summary th, table.summary td {\n  border: %spt solid %s;\n}\n", num(tb.GridWidth), tb.GridColor)
	fmt.Fprintf(&sb, "table.summary th {\n  background: %s;\n  color: %s;\n  font-weight: bold;\n  font-size: %spt;\n  padding-bottom: %spt;\n}\n",
		tb.HeaderBackground, tb.HeaderColor, num(tb.HeaderFontSize), num(tb.HeaderBottomPadding))
	fmt.Fprintf(&sb, "table.summary td {\n  background: %s;\n}\n", tb.BodyBackground)
	return sb.String()
}

// num formats a point value without trailing zeros.
func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

const baseCSS = `* {
  box-sizing: border-box;
}
html, body {
  margin: 0;
  padding: 0;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
body {
  font-family: ` + FontSans + `;
  font-size: 10pt;
}
section.page {
  break-after: page;
}
section.page:last-child {
  break-after: auto;
}
p {
  white-space: pre-wrap;
  overflow-wrap: anywhere;
}
pre {
  white-space: pre-wrap;
  overflow-wrap: anywhere;
  overflow: visible;
}
table.summary {
  border-collapse: collapse;
  margin: 0 auto;
}
table.summary th, table.summary td {
  text-align: center;
  vertical-align: middle;
  padding: 3pt 6pt;
  font-family: ` + FontSans + `;
  font-size: 10pt;
}
`
