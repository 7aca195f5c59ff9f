package zoom

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Text layout defaults.
const (
	DefaultFontSize     = 20.0
	DefaultTextMaxWidth = 600.0
	textMinScale        = 0.01
)

// Measurer measures a single line of text.
type Measurer interface {
	MeasureString(s string) (width, height float64)
}

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("zoom: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &Font{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

var defaultFont *Font

// DefaultFont returns Go Regular at DefaultFontSize, loaded on first use.
func DefaultFont() *Font {
	if defaultFont == nil {
		f, err := LoadFont(goregular.TTF, DefaultFontSize)
		if err != nil {
			// goregular is embedded; failing to parse it is a build defect.
			panic(err)
		}
		defaultFont = f
	}
	return defaultFont
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// --- Text node ---

// TextLine is one laid-out line of a Text node.
type TextLine struct {
	Text  string
	Width float64
}

// Text is a word-wrapped block of text. Close up it draws glyphs; once a
// line would be only a few pixels tall it draws a bar per line instead,
// and below one pixel it draws nothing.
//
// Content and layout parameters change through setters, which lay the text
// out again and resize the node.
type Text struct {
	*Node

	// Color is the glyph and bar color.
	Color Color

	content  string
	fontSize float64
	maxWidth float64
	measurer Measurer
	lines    []TextLine
}

type textLayout struct {
	lines  []TextLine
	bounds Bounds
}

// NewText lays out content with m (DefaultFont when nil) wrapped at
// DefaultTextMaxWidth.
func NewText(name, content string, m Measurer) *Text {
	if m == nil {
		m = DefaultFont()
	}
	t := &Text{
		Node:     NewNode(name),
		Color:    Color{0, 0, 0, 1},
		content:  content,
		fontSize: DefaultFontSize,
		maxWidth: DefaultTextMaxWidth,
		measurer: m,
	}
	t.Node.MinScale = textMinScale
	t.Node.OnPaint = t.paint
	t.relayout()
	return t
}

// Content returns the laid-out string.
func (t *Text) Content() string { return t.content }

// FontSize returns the line advance in local units.
func (t *Text) FontSize() float64 { return t.fontSize }

// MaxWidth returns the wrap width.
func (t *Text) MaxWidth() float64 { return t.maxWidth }

// SetContent replaces the text and lays it out again.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	t.relayout()
	return t
}

// SetFontSize changes the line advance and lays the text out again.
func (t *Text) SetFontSize(size float64) *Text {
	t.fontSize = size
	t.relayout()
	return t
}

// SetMaxWidth changes the wrap width and lays the text out again.
func (t *Text) SetMaxWidth(width float64) *Text {
	t.maxWidth = width
	t.relayout()
	return t
}

// Lines returns the laid-out lines. The returned slice MUST NOT be mutated.
func (t *Text) Lines() []TextLine {
	return t.lines
}

func (t *Text) relayout() {
	l := layoutText(t.content, t.measurer, t.maxWidth, t.fontSize)
	t.lines = l.lines
	t.SetBounds(l.bounds)
}

var wordPattern = regexp.MustCompile(`[^\s]+|\s+`)
var lineBreak = regexp.MustCompile(`[ \t]*\n`)

// layoutText greedily wraps each paragraph of content at maxWidth and
// returns the lines plus bounds covering them from the origin.
func layoutText(content string, m Measurer, maxWidth, lineHeight float64) textLayout {
	var b Bounds
	b.AddPoint(0, 0)

	var lines []TextLine
	y := 0.0
	for _, para := range lineBreak.Split(strings.TrimSpace(content), -1) {
		next := ""
		width, lastWidth := 0.0, 0.0
		for _, word := range wordPattern.FindAllString(para, -1) {
			candidate := next + word
			lastWidth = width
			width, _ = m.MeasureString(candidate)
			if width > maxWidth && next != "" {
				lines = append(lines, TextLine{Text: next, Width: lastWidth})
				next = word
				width, _ = m.MeasureString(word)
				y += lineHeight
			} else {
				next = candidate
			}
			b.AddPoint(width, y)
		}
		y += lineHeight
		lines = append(lines, TextLine{Text: next, Width: width})
		b.AddPoint(width, y)
	}
	return textLayout{lines: lines, bounds: b}
}

func (t *Text) paint(ctx Context, scale float64) bool {
	if len(t.lines) == 0 {
		return true
	}
	displayHeight := t.FullBounds().Height * scale
	if displayHeight < 1 {
		return true
	}

	x := t.bounds.X
	y := 0.0
	if displayHeight/float64(len(t.lines)) > 4 {
		ctx.SetFillColor(t.Color)
		for _, line := range t.lines {
			ctx.FillText(line.Text, x, y)
			y += t.fontSize
		}
		return true
	}

	ctx.BeginPath()
	ctx.SetStrokeColor(t.Color)
	ctx.SetLineWidth(t.fontSize / 4)
	for _, line := range t.lines {
		ctx.MoveTo(x, y+t.fontSize/2)
		ctx.LineTo(x+line.Width, y+t.fontSize/2)
		y += t.fontSize
	}
	ctx.Stroke()
	return true
}
