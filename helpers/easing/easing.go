// Package easing implements Robert Penner's easing equations.
//
// Every Func maps the elapsed time t of a tween lasting d to a value that
// starts at b for t=0 and reaches b+c at t=d.
package easing

import (
	"errors"
	"fmt"
	"math"
)

// Func is an easing function. t is the elapsed time, b the starting value,
// c the total change and d the duration of the tween.
type Func func(t, b, c, d float64) float64

// Overshoot is the default overshoot of the Back family, roughly 10%.
const Overshoot = 1.70158

// ErrUnknown is returned by Lookup for names not in Names.
var ErrUnknown = errors.New("unknown easing function")

// Default is the easing used when none is chosen.
var Default Func = OutQuad

// Lerp linearly interpolates between s and e, returning s for t=0 and e for t=1.
func Lerp(s, e, t float64) float64 { return (1-t)*s + t*e }

func Linear(t, b, c, d float64) float64 { return c*t/d + b }

func InQuad(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

func OutQuad(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

func InOutQuad(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

func InCubic(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

func OutCubic(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

func InOutCubic(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

func InQuart(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

func OutQuart(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

func InOutQuart(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

func InQuint(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

func OutQuint(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

func InOutQuint(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

func InSine(t, b, c, d float64) float64 { return -c*math.Cos(t/d*math.Pi/2) + c + b }

func OutSine(t, b, c, d float64) float64 { return c*math.Sin(t/d*math.Pi/2) + b }

func InOutSine(t, b, c, d float64) float64 { return -c/2*(math.Cos(math.Pi*t/d)-1) + b }

func InExpo(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

func OutExpo(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(1-math.Pow(2, -10*t/d)) + b
}

func InOutExpo(t, b, c, d float64) float64 {
	switch {
	case t == 0:
		return b
	case t == d:
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(2-math.Pow(2, -10*t)) + b
}

func InCirc(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

func OutCirc(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

func InOutCirc(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

// The elastic family oscillates with period p and amplitude |c|, so the
// phase shift is a quarter period.

func InElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	t--
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*2*math.Pi/p)) + b
}

func OutElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * 0.3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*2*math.Pi/p) + c + b
}

func InOutElastic(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * 0.3 * 1.5
	s := p / 4
	t--
	if t < 0 {
		return -0.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*2*math.Pi/p)) + b
	}
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*2*math.Pi/p)*0.5 + c + b
}

func InBack(t, b, c, d float64) float64    { return InBackWith(Overshoot)(t, b, c, d) }
func OutBack(t, b, c, d float64) float64   { return OutBackWith(Overshoot)(t, b, c, d) }
func InOutBack(t, b, c, d float64) float64 { return InOutBackWith(Overshoot)(t, b, c, d) }

// InBackWith returns InBack with overshoot s instead of Overshoot.
func InBackWith(s float64) Func {
	return func(t, b, c, d float64) float64 {
		t /= d
		return c*t*t*((s+1)*t-s) + b
	}
}

// OutBackWith returns OutBack with overshoot s instead of Overshoot.
func OutBackWith(s float64) Func {
	return func(t, b, c, d float64) float64 {
		t = t/d - 1
		return c*(t*t*((s+1)*t+s)+1) + b
	}
}

// InOutBackWith returns InOutBack with overshoot s instead of Overshoot.
func InOutBackWith(s float64) Func {
	s *= 1.525
	return func(t, b, c, d float64) float64 {
		t /= d / 2
		if t < 1 {
			return c/2*(t*t*((s+1)*t-s)) + b
		}
		t -= 2
		return c/2*(t*t*((s+1)*t+s)+2) + b
	}
}

func InBounce(t, b, c, d float64) float64 { return c - OutBounce(d-t, 0, c, d) + b }

func OutBounce(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+0.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+0.9375) + b
	}
	t -= 2.625 / 2.75
	return c*(7.5625*t*t+0.984375) + b
}

func InOutBounce(t, b, c, d float64) float64 {
	if t < d/2 {
		return InBounce(t*2, 0, c, d)*0.5 + b
	}
	return OutBounce(t*2-d, 0, c, d)*0.5 + c*0.5 + b
}

type named struct {
	name string
	fn   Func
}

var table = [...]named{
	{"linearTween", Linear},
	{"easeInQuad", InQuad},
	{"easeOutQuad", OutQuad},
	{"easeInOutQuad", InOutQuad},
	{"easeInCubic", InCubic},
	{"easeOutCubic", OutCubic},
	{"easeInOutCubic", InOutCubic},
	{"easeInQuart", InQuart},
	{"easeOutQuart", OutQuart},
	{"easeInOutQuart", InOutQuart},
	{"easeInQuint", InQuint},
	{"easeOutQuint", OutQuint},
	{"easeInOutQuint", InOutQuint},
	{"easeInSine", InSine},
	{"easeOutSine", OutSine},
	{"easeInOutSine", InOutSine},
	{"easeInExpo", InExpo},
	{"easeOutExpo", OutExpo},
	{"easeInOutExpo", InOutExpo},
	{"easeInCirc", InCirc},
	{"easeOutCirc", OutCirc},
	{"easeInOutCirc", InOutCirc},
	{"easeInElastic", InElastic},
	{"easeOutElastic", OutElastic},
	{"easeInOutElastic", InOutElastic},
	{"easeInBack", InBack},
	{"easeOutBack", OutBack},
	{"easeInOutBack", InOutBack},
	{"easeInBounce", InBounce},
	{"easeOutBounce", OutBounce},
	{"easeInOutBounce", InOutBounce},
}

// Names returns the names accepted by Lookup.
func Names() []string {
	names := make([]string, len(table))
	for i := range table {
		names[i] = table[i].name
	}
	return names
}

// Lookup returns the easing function with the given name. "easingDefault"
// returns Default.
func Lookup(name string) (Func, error) {
	if name == "easingDefault" {
		return Default, nil
	}
	for i := range table {
		if table[i].name == name {
			return table[i].fn, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
}
