package projectpdf

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Standard paper sizes.
var (
	A4     = PageSize{Width: 21.0, Height: 29.7}
	Letter = PageSize{Width: 21.59, Height: 27.94}
	Legal  = PageSize{Width: 21.59, Height: 35.56}
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PointsToCM converts PostScript points to centimeters.
func PointsToCM(pt float64) float64 {
	return pt / 72 * 2.54
}

// DefaultFooterTemplate prints "Page N of M" centered in the bottom margin.
const DefaultFooterTemplate = `<div style="width: 100%; font-size: 8px; font-family: Helvetica, Arial, sans-serif; text-align: center; color: #555;">` +
	`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// PageConfig controls the PDF output parameters.
//
// Zero-value fields fall back to [DefaultPageConfig].
type PageConfig struct {
	// Size specifies the paper size. Defaults to Letter.
	Size PageSize

	// Margin specifies page margins in centimeters. Defaults to 40pt on
	// all sides.
	Margin Margin

	// FooterTemplate is Chrome's print footer template, supporting the
	// classes date, title, url, pageNumber and totalPages.
	FooterTemplate string

	// NoFooter disables the footer entirely.
	NoFooter bool
}

// DefaultPageConfig returns Letter paper with 40pt margins and a page
// number footer.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:           Letter,
		Margin:         UniformMargin(PointsToCM(40)),
		FooterTemplate: DefaultFooterTemplate,
	}
}

// resolved returns a PageConfig with all zero values replaced by defaults.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Margin == (Margin{}) {
		r.Margin = d.Margin
	}
	if r.FooterTemplate == "" {
		r.FooterTemplate = d.FooterTemplate
	}
	return r
}

// cmToInches converts centimeters to inches.
func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// paperDimensions returns the paper width and height in inches.
func (p *PageConfig) paperDimensions() (width, height float64) {
	r := p.resolved()
	return cmToInches(r.Size.Width), cmToInches(r.Size.Height)
}

// marginInches returns margins converted to inches.
func (p *PageConfig) marginInches() (top, right, bottom, left float64) {
	r := p.resolved()
	return cmToInches(r.Margin.Top),
		cmToInches(r.Margin.Right),
		cmToInches(r.Margin.Bottom),
		cmToInches(r.Margin.Left)
}
