// Package cart holds the session's shopping cart. Lines are keyed by
// medicine id, hold at most one entry per medicine, and never carry a
// quantity below one.
package cart

import (
	"errors"
	"sync"

	"github.com/noah-isme/backend-apotek/internal/catalog"
)

// ErrNotFound indicates no line exists for the given medicine id.
var ErrNotFound = errors.New("cart: line not found")

// ErrInvalidQuantity is returned when an add is attempted with a
// non-positive quantity.
var ErrInvalidQuantity = errors.New("cart: quantity must be positive")

// Line couples a medicine with the quantity in the cart. The medicine is a
// snapshot taken when the line was created; it goes stale if the catalog
// record is deleted afterwards, which is the documented behavior.
type Line struct {
	Medicine catalog.Medicine
	Quantity int
}

// Cart is an insertion-ordered sequence of lines owned by one session.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the quantity into an existing line for the same medicine or
// appends a new line. The quantity must be positive; stock is not enforced
// here.
func (c *Cart) Add(m catalog.Medicine, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(m.ID); idx >= 0 {
		c.lines[idx].Quantity += quantity
		return nil
	}
	c.lines = append(c.lines, Line{Medicine: m.Clone(), Quantity: quantity})
	return nil
}

// SetQuantity replaces a line's quantity exactly. A non-positive quantity
// removes the line instead, mirroring Remove.
func (c *Cart) SetQuantity(id string, quantity int) error {
	if quantity <= 0 {
		c.Remove(id)
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	c.lines[idx].Quantity = quantity
	return nil
}

// Remove drops the line for the given medicine id. Removing an absent id is
// a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Get returns the line for the given medicine id.
func (c *Cart) Get(id string) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return Line{}, false
	}
	return c.lines[idx].clone(), true
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line.clone())
	}
	return out
}

// Len reports the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// TotalItemCount sums all line quantities, the number shown on the cart
// badge.
func (c *Cart) TotalItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) indexOf(id string) int {
	for i, line := range c.lines {
		if line.Medicine.ID == id {
			return i
		}
	}
	return -1
}

func (l Line) clone() Line {
	return Line{Medicine: l.Medicine.Clone(), Quantity: l.Quantity}
}
