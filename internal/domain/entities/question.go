package entities

import "fmt"

// Question is a single multiplication prompt. Operands are fixed at session start.
type Question struct {
	Left  int
	Right int
}

// Answer returns the expected product.
func (q Question) Answer() int {
	return q.Left * q.Right
}

// String renders the prompt without the answer, e.g. "3 × 4".
func (q Question) String() string {
	return fmt.Sprintf("%d × %d", q.Left, q.Right)
}
