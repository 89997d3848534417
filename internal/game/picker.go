package game

// ValuePicker chooses one value from a finite set of options. Aces
// offer {1, 11} and tens offer {-10, 10}; the choice belongs to the
// acting player, so the presentation layer supplies an implementation
// per player (a terminal prompt, a scripted answer, a bot strategy).
// PickValue must return a member of options.
type ValuePicker interface {
	PickValue(options []int) int
}

// PickValueFunc adapts a plain function to the ValuePicker interface
type PickValueFunc func(options []int) int

// PickValue implements ValuePicker
func (f PickValueFunc) PickValue(options []int) int {
	return f(options)
}

// FixedPicker always picks the same value. It backs non-interactive
// drivers that already know the player's choice.
type FixedPicker int

// PickValue implements ValuePicker
func (p FixedPicker) PickValue([]int) int {
	return int(p)
}
