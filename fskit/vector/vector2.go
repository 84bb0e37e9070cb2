package vector

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector2 is a point or direction in 2D space. The directional helpers
// (Up, Down, Left, Right) mutate the receiver in place and return it for
// chaining; every other operation returns a new value.
type Vector2 struct {
	X float64
	Y float64
}

// New creates a Vector2 from its components.
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector2 {
	return Vector2{}
}

// Up moves the vector up by step. Mutates the receiver and returns it.
func (v *Vector2) Up(step float64) *Vector2 {
	v.Y += step
	return v
}

// Down moves the vector down by step. Mutates the receiver and returns it.
func (v *Vector2) Down(step float64) *Vector2 {
	v.Y -= step
	return v
}

// Left moves the vector left by step. Mutates the receiver and returns it.
func (v *Vector2) Left(step float64) *Vector2 {
	v.X -= step
	return v
}

// Right moves the vector right by step. Mutates the receiver and returns it.
func (v *Vector2) Right(step float64) *Vector2 {
	v.X += step
	return v
}

// Add returns the component-wise sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by factor.
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing in v's direction.
// The zero vector normalizes to the zero vector.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// AngleBetween returns the angle between v and other in radians.
// Zero-length operands yield an angle of zero.
func (v Vector2) AngleBetween(other Vector2) float64 {
	lengths := v.Length() * other.Length()
	if lengths == 0 {
		return 0
	}

	// Clamp against floating-point drift outside acos's domain
	cos := v.Dot(other) / lengths
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector2) DistanceTo(other Vector2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Clamp returns v with both components clamped to [min, max].
func (v Vector2) Clamp(min, max float64) Vector2 {
	return Vector2{
		X: math.Max(min, math.Min(max, v.X)),
		Y: math.Max(min, math.Min(max, v.Y)),
	}
}

// Equal reports exact component-wise equality.
func (v Vector2) Equal(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// EqualApprox reports component-wise equality within an absolute tolerance.
func (v Vector2) EqualApprox(other Vector2, tolerance float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tolerance)
}

// Clone returns a copy of v.
func (v Vector2) Clone() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}
