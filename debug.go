package zoom

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// globalDebug enables tree sanity checks on every AddChild. Set through
// SetDebugMode; a Root created with Config.Debug also turns it on.
var globalDebug bool

// SetDebugMode toggles tree sanity checks and verbose repaint logging.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled {
		if l, ok := logger.(*logrus.Logger); ok && l.GetLevel() < logrus.DebugLevel {
			l.SetLevel(logrus.DebugLevel)
		}
	}
}

// DebugMode reports whether debug checks are enabled.
func DebugMode() bool {
	return globalDebug
}

// paintStats holds per-repaint timing and counts. Only populated in debug mode.
type paintStats struct {
	paintTime    time.Duration
	nodesPainted int
	nodesCulled  int
}

func (r *Root) debugLog(stats paintStats) {
	if !globalDebug {
		return
	}
	Logger().WithFields(logrus.Fields{
		"paint":   stats.paintTime,
		"painted": stats.nodesPainted,
		"culled":  stats.nodesCulled,
	}).Debug("repaint")
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warnf("node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugCheckListener panics with a descriptive message when a value that
// handles no event is registered as a listener.
func debugCheckListener(n *Node, l Listener) {
	if !isListener(l) {
		panic(fmt.Sprintf("zoom: %T handles no events and cannot listen on node %q", l, n.Name))
	}
}
