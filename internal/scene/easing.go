package scene

// Rate maps linear step progress in [0,1] to eased animation progress.
type Rate func(p float64) float64

// Linear leaves progress untouched.
func Linear(p float64) float64 { return p }

// Smooth is the default cubic smoothstep: slow in, slow out.
func Smooth(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}

// EaseIn accelerates from rest.
func EaseIn(p float64) float64 { return p * p }

// EaseOut decelerates to rest.
func EaseOut(p float64) float64 { return 1 - (1-p)*(1-p) }

// ThereAndBack rises to 1 at the midpoint and returns to 0, for pulse
// effects like Indicate.
func ThereAndBack(p float64) float64 {
	if p < 0.5 {
		return Smooth(2 * p)
	}
	return Smooth(2 * (1 - p))
}
