package zoom

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Easing shapes animation progress: it maps a ratio in [0, 1] to an eased
// ratio. Every easing returns exactly 0 at 0 and exactly 1 at 1; Back and
// Elastic curves overshoot in between.
type Easing func(ratio float64) float64

// EasingFromTween adapts a gween curve to an Easing. gween evaluates in
// float32, so eased ratios strictly between 0 and 1 carry float32
// precision; the endpoints are exact.
func EasingFromTween(fn ease.TweenFunc) Easing {
	return func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		}
		return float64(fn(float32(x), 0, 1, 1))
	}
}

// Linear is the identity curve. It is exact in float64.
func Linear(x float64) float64 { return x }

var (
	InQuad    = EasingFromTween(ease.InQuad)
	OutQuad   = EasingFromTween(ease.OutQuad)
	InOutQuad = EasingFromTween(ease.InOutQuad)

	InCubic    = EasingFromTween(ease.InCubic)
	OutCubic   = EasingFromTween(ease.OutCubic)
	InOutCubic = EasingFromTween(ease.InOutCubic)

	InQuart    = EasingFromTween(ease.InQuart)
	OutQuart   = EasingFromTween(ease.OutQuart)
	InOutQuart = EasingFromTween(ease.InOutQuart)

	InQuint    = EasingFromTween(ease.InQuint)
	OutQuint   = EasingFromTween(ease.OutQuint)
	InOutQuint = EasingFromTween(ease.InOutQuint)

	InSine    = EasingFromTween(ease.InSine)
	OutSine   = EasingFromTween(ease.OutSine)
	InOutSine = EasingFromTween(ease.InOutSine)

	InExpo    = EasingFromTween(ease.InExpo)
	OutExpo   = EasingFromTween(ease.OutExpo)
	InOutExpo = EasingFromTween(ease.InOutExpo)

	InCirc    = EasingFromTween(ease.InCirc)
	OutCirc   = EasingFromTween(ease.OutCirc)
	InOutCirc = EasingFromTween(ease.InOutCirc)

	InBack    = EasingFromTween(ease.InBack)
	OutBack   = EasingFromTween(ease.OutBack)
	InOutBack = EasingFromTween(ease.InOutBack)

	InElastic    = EasingFromTween(ease.InElastic)
	OutElastic   = EasingFromTween(ease.OutElastic)
	InOutElastic = EasingFromTween(ease.InOutElastic)

	InBounce    = EasingFromTween(ease.InBounce)
	OutBounce   = EasingFromTween(ease.OutBounce)
	InOutBounce = EasingFromTween(ease.InOutBounce)
)

var easingsByName = map[string]Easing{
	"Linear":       Linear,
	"InQuad":       InQuad,
	"OutQuad":      OutQuad,
	"InOutQuad":    InOutQuad,
	"InCubic":      InCubic,
	"OutCubic":     OutCubic,
	"InOutCubic":   InOutCubic,
	"InQuart":      InQuart,
	"OutQuart":     OutQuart,
	"InOutQuart":   InOutQuart,
	"InQuint":      InQuint,
	"OutQuint":     OutQuint,
	"InOutQuint":   InOutQuint,
	"InSine":       InSine,
	"OutSine":      OutSine,
	"InOutSine":    InOutSine,
	"InExpo":       InExpo,
	"OutExpo":      OutExpo,
	"InOutExpo":    InOutExpo,
	"InCirc":       InCirc,
	"OutCirc":      OutCirc,
	"InOutCirc":    InOutCirc,
	"InBack":       InBack,
	"OutBack":      OutBack,
	"InOutBack":    InOutBack,
	"InElastic":    InElastic,
	"OutElastic":   OutElastic,
	"InOutElastic": InOutElastic,
	"InBounce":     InBounce,
	"OutBounce":    OutBounce,
	"InOutBounce":  InOutBounce,
}

// EasingByName looks up a curve by its exported name, e.g. "InOutExpo".
func EasingByName(name string) (Easing, bool) {
	e, ok := easingsByName[name]
	return e, ok
}

// EasingNames returns every registered curve name in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easingsByName))
	for name := range easingsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
