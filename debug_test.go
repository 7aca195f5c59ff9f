package zoom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	t.Cleanup(func() {
		SetLogger(logrus.StandardLogger())
		SetDebugMode(false)
	})
	return &buf
}

func TestLoggerTagsComponent(t *testing.T) {
	buf := captureLogs(t)
	Logger().Info("hello")
	if !strings.Contains(buf.String(), "component=zoom") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(logrus.StandardLogger())
	Logger().Error("dropped")
}

func TestSetDebugModeRaisesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.InfoLevel)
	SetLogger(l)
	defer func() {
		SetLogger(logrus.StandardLogger())
		SetDebugMode(false)
	}()

	SetDebugMode(true)
	if !DebugMode() {
		t.Fatal("DebugMode = false")
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", l.GetLevel())
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureLogs(t)
	SetDebugMode(true)

	n := NewNode("n0")
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		c := NewNode("deep")
		n.AddChild(c)
		n = c
	}
	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("no depth warning: %q", buf.String())
	}
}

func TestDebugChildCountWarning(t *testing.T) {
	buf := captureLogs(t)
	SetDebugMode(true)

	p := NewNode("wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		p.AddChild(NewNode("c"))
	}
	if !strings.Contains(buf.String(), "children") {
		t.Errorf("no child count warning: %q", buf.String())
	}
}

func TestDebugRepaintStats(t *testing.T) {
	buf := captureLogs(t)
	SetDebugMode(true)

	c, _ := newTestCanvas()
	c.Layer().AddChild(NewRect("n", NewBounds(0, 0, 10, 10), Color{A: 1}))
	c.Layer().AddChild(NewRect("far", NewBounds(500, 500, 10, 10), Color{A: 1}))
	c.Paint(newRecordingContext())

	out := buf.String()
	if !strings.Contains(out, "repaint") || !strings.Contains(out, "culled=1") {
		t.Errorf("repaint log = %q", out)
	}
}
