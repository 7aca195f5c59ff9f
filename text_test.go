package zoom

import (
	"testing"
	"unicode/utf8"
)

// fixedMeasurer gives every rune a width of 10 and every line a height of 20.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * 10, 20
}

func TestTextSingleLine(t *testing.T) {
	txt := NewText("t", "hello world", fixedMeasurer{})
	lines := txt.Lines()
	if len(lines) != 1 || lines[0].Text != "hello world" {
		t.Fatalf("lines = %+v", lines)
	}
	if b := txt.Bounds(); !b.Equal(NewBounds(0, 0, 110, DefaultFontSize)) {
		t.Errorf("bounds = %v", b)
	}
	if txt.MinScale != 0.01 {
		t.Errorf("MinScale = %v", txt.MinScale)
	}
}

func TestTextWraps(t *testing.T) {
	// Fourteen words run to 690px, past the 600px wrap width.
	content := ""
	for i := 0; i < 14; i++ {
		content += "word "
	}
	txt := NewText("t", content, fixedMeasurer{})
	lines := txt.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %+v", len(lines), lines)
	}
	for _, l := range lines {
		if l.Width > DefaultTextMaxWidth {
			t.Errorf("line %q is %vpx wide", l.Text, l.Width)
		}
	}
	if h := txt.Bounds().Height; h != 2*DefaultFontSize {
		t.Errorf("height = %v, want two lines", h)
	}
}

func TestTextParagraphs(t *testing.T) {
	txt := NewText("t", "one\ntwo  \nthree", fixedMeasurer{})
	lines := txt.Lines()
	if len(lines) != 3 || lines[0].Text != "one" || lines[1].Text != "two" || lines[2].Text != "three" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestTextPaintGlyphsWhenLarge(t *testing.T) {
	txt := NewText("t", "one\ntwo", fixedMeasurer{})
	ctx := newRecordingContext()
	txt.FullPaint(ctx, 1)
	if ctx.count("fillText") != 2 {
		t.Errorf("ops = %v, want two fillText", ctx.ops)
	}
	if ctx.ops[1] != `fillText "one" 0 0` || ctx.ops[2] != `fillText "two" 0 20` {
		t.Errorf("ops = %v", ctx.ops)
	}
}

func TestTextPaintGreeksWhenSmall(t *testing.T) {
	txt := NewText("t", "one\ntwo", fixedMeasurer{})
	ctx := newRecordingContext()
	// 40px tall at scale 0.1 is 4px, 2px per line.
	txt.FullPaint(ctx, 0.1)
	if ctx.count("fillText") != 0 {
		t.Errorf("drew glyphs at tiny scale: %v", ctx.ops)
	}
	if ctx.count("lineTo") != 2 || ctx.count("stroke 5") != 1 {
		t.Errorf("ops = %v, want two bars stroked at width 5", ctx.ops)
	}
}

func TestTextPaintNothingBelowOnePixel(t *testing.T) {
	txt := NewText("t", "one\ntwo", fixedMeasurer{})
	ctx := newRecordingContext()
	txt.FullPaint(ctx, 0.02)
	for _, op := range ctx.ops {
		if op != "save" && op != "restore" {
			t.Errorf("unexpected op %q", op)
		}
	}
}

func TestDefaultFontMeasures(t *testing.T) {
	f := DefaultFont()
	if f.Size() != DefaultFontSize || f.LineHeight() <= 0 {
		t.Errorf("size=%v lineHeight=%v", f.Size(), f.LineHeight())
	}
	w1, _ := f.MeasureString("i")
	w2, _ := f.MeasureString("iiii")
	if !(w2 > w1 && w1 > 0) {
		t.Errorf("widths %v %v", w1, w2)
	}
	if DefaultFont() != f {
		t.Error("DefaultFont should be cached")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("LoadFont accepted garbage")
	}
}

func TestTextSettersRelayout(t *testing.T) {
	txt := NewText("t", "hello world", fixedMeasurer{})
	txt.SetContent("hi")
	if txt.Content() != "hi" || len(txt.Lines()) != 1 || txt.Lines()[0].Text != "hi" {
		t.Fatalf("lines = %+v", txt.Lines())
	}
	if b := txt.Bounds(); !b.Equal(NewBounds(0, 0, 20, DefaultFontSize)) {
		t.Errorf("Bounds = %v", b)
	}

	txt.SetContent("aaaa bbbb").SetMaxWidth(50)
	if len(txt.Lines()) != 2 || txt.MaxWidth() != 50 {
		t.Fatalf("lines = %+v", txt.Lines())
	}
	txt.SetFontSize(10)
	if h := txt.Bounds().Height; h != 20 || txt.FontSize() != 10 {
		t.Errorf("height = %g, want 20", h)
	}
}

func TestTextSetContentInvalidatesParent(t *testing.T) {
	parent := NewNode("parent")
	txt := NewText("t", "hi", fixedMeasurer{})
	parent.AddChild(txt.Node)
	if w := parent.FullBounds().Width; w != 20 {
		t.Fatalf("parent width = %g", w)
	}
	txt.SetContent("hello")
	if w := parent.FullBounds().Width; w != 50 {
		t.Errorf("parent width = %g, want 50", w)
	}
}
