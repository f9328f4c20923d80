package shortest

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// infinity is how unreachable costs print.
const infinity = "∞"

// Cost is a path cost that is either a finite non-negative integer or
// unreachable. The zero value is a finite cost of 0.
type Cost struct {
	value       int
	unreachable bool
}

// Unreachable is the cost of a node that no path reaches.
var Unreachable = Cost{unreachable: true}

// Finite returns the finite cost n.
func Finite(n int) Cost { return Cost{value: n} }

// Reachable reports whether c is finite.
func (c Cost) Reachable() bool { return !c.unreachable }

// Value returns the finite value and whether c is reachable.
func (c Cost) Value() (int, bool) { return c.value, !c.unreachable }

// Less orders costs with every finite cost below Unreachable.
func (c Cost) Less(o Cost) bool {
	switch {
	case c.unreachable:
		return false
	case o.unreachable:
		return true
	default:
		return c.value < o.value
	}
}

// Add returns c + w. Adding to Unreachable stays Unreachable.
func (c Cost) Add(w int) Cost {
	if c.unreachable {
		return Unreachable
	}
	return Cost{value: c.value + w}
}

// String renders the value, or "∞" when unreachable.
func (c Cost) String() string {
	if c.unreachable {
		return infinity
	}
	return strconv.Itoa(c.value)
}

// MarshalJSON encodes finite costs as numbers and Unreachable as null.
func (c Cost) MarshalJSON() ([]byte, error) {
	if c.unreachable {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.value)), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cost) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Unreachable
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Finite(n)
	return nil
}
