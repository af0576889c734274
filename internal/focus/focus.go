// Package focus derives the decorative leaf icon's pose from which form
// field currently holds input focus.
package focus

import (
	"fmt"
	"strings"
)

// Field identifies a focusable form input.
type Field string

const (
	Email    Field = "email"
	Password Field = "password"
	Name     Field = "name"
	Phone    Field = "phone"
)

// Fields lists every focusable field in derivation priority order.
var Fields = []Field{Email, Password, Name, Phone}

// ParseField maps a form value to a Field.
func ParseField(s string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Flags holds one independent boolean per field. Flags are not forced to be
// mutually exclusive; Derive resolves overlaps by priority.
type Flags struct {
	set map[Field]bool
}

// Focus marks f as focused.
func (fl *Flags) Focus(f Field) {
	if fl.set == nil {
		fl.set = make(map[Field]bool, len(Fields))
	}
	fl.set[f] = true
}

// Blur clears the focus flag for f.
func (fl *Flags) Blur(f Field) {
	delete(fl.set, f)
}

// Has reports whether f is focused.
func (fl Flags) Has(f Field) bool { return fl.set[f] }

// Any reports whether any field is focused.
func (fl Flags) Any() bool { return len(fl.set) > 0 }

// Clone returns an independent copy.
func (fl Flags) Clone() Flags {
	out := Flags{}
	for f := range fl.set {
		out.Focus(f)
	}
	return out
}

// Decoration is the icon's offset (px), rotation (deg) and scale.
type Decoration struct {
	X       float64
	Y       float64
	Rotate  float64
	Scale   float64
	Pulsing bool
}

// Neutral is the resting pose when nothing is focused.
var Neutral = Decoration{Scale: 1}

var poses = map[Field]Decoration{
	Email:    {X: -20, Y: 10, Rotate: 15, Scale: 1.2},
	Password: {X: 20, Y: 10, Rotate: -15, Scale: 1.2},
	Name:     {X: -15, Y: 5, Rotate: 10, Scale: 1.3},
	Phone:    {X: 15, Y: 5, Rotate: -10, Scale: 1.3},
}

// Derive returns the pose for the first focused field in priority order.
func Derive(fl Flags) Decoration {
	for _, f := range Fields {
		if fl.Has(f) {
			d := poses[f]
			d.Pulsing = true
			return d
		}
	}
	return Neutral
}

// Transform renders the pose as a CSS transform value.
func (d Decoration) Transform() string {
	return fmt.Sprintf("translateX(%gpx) translateY(%gpx) rotate(%gdeg) scale(%g)", d.X, d.Y, d.Rotate, d.Scale)
}
