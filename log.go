package zoom

import (
	"io"

	"github.com/sirupsen/logrus"
)

// logger is the package-wide sink. It defaults to the logrus standard logger
// so applications that configure logrus globally get zoom's output too.
var logger logrus.FieldLogger = logrus.StandardLogger()

// Logger returns the entry zoom logs through, tagged component=zoom.
func Logger() *logrus.Entry {
	return logger.WithField("component", "zoom")
}

// SetLogger replaces the logger zoom writes to. A nil logger discards all
// output.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = discard
	}
	logger = l
}
