// Package tilt derives the parallax tilt applied to a card from the
// pointer position. It holds no state between events.
package tilt

import "fmt"

// DefaultDamping divides the pointer's offset from the card center.
const DefaultDamping = 20

// Lift is the fixed upward raise of a tilted card, in rows.
const Lift = 1

// LiftPixels is the CSS height of one Lift row.
const LiftPixels = 4

// Rect is a card's bounding box in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Transform is a perspective rotation plus an upward lift.
type Transform struct {
	RotateX float64 // degrees, around the horizontal axis
	RotateY float64 // degrees, around the vertical axis
	Lift    int
}

// Neutral is the resting transform: no rotation, no lift.
func Neutral() Transform {
	return Transform{}
}

// IsNeutral reports whether t is the resting transform.
func (t Transform) IsNeutral() bool {
	return t == Transform{}
}

// Compute derives the transform for a pointer at (x, y), given in the
// same coordinates as box. Rotation is the offset from the box center
// divided by damping; the horizontal axis is negated so the card leans
// toward the pointer. Damping <= 0 uses DefaultDamping.
func Compute(box Rect, x, y, damping float64) Transform {
	if damping <= 0 {
		damping = DefaultDamping
	}
	relX := x - float64(box.X)
	relY := y - float64(box.Y)
	cx := float64(box.W) / 2
	cy := float64(box.H) / 2
	return Transform{
		RotateX: (relY - cy) / damping,
		RotateY: -(relX - cx) / damping,
		Lift:    Lift,
	}
}

// CSS renders t as the equivalent CSS transform, with the lift in pixels.
func (t Transform) CSS() string {
	return fmt.Sprintf("perspective(1000px) rotateX(%.2fdeg) rotateY(%.2fdeg) translateY(%dpx)",
		t.RotateX, t.RotateY, -LiftPixels*t.Lift)
}

// Lean classifies the horizontal rotation for rendering: -1 leaning left,
// 1 leaning right, 0 level.
func (t Transform) Lean() int {
	switch {
	case t.RotateY > 0.05:
		return -1
	case t.RotateY < -0.05:
		return 1
	}
	return 0
}
