package fortune

import "math/rand/v2"

// Picker selects an index in [0, n). Implementations must return a valid
// index for any n > 0.
type Picker interface {
	Intn(n int) int
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(n int) int

// Intn calls f(n).
func (f PickerFunc) Intn(n int) int { return f(n) }

// uniformPicker draws from the unseeded global source.
type uniformPicker struct{}

func (uniformPicker) Intn(n int) int { return rand.IntN(n) }

// UniformPicker returns the default non-reproducible uniform picker.
func UniformPicker() Picker { return uniformPicker{} }

func pick(p Picker, items []string) string {
	if len(items) == 0 {
		return ""
	}
	i := p.Intn(len(items))
	if i < 0 || i >= len(items) {
		i = 0
	}
	return items[i]
}
