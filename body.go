package verlet

import "fmt"

// CollisionType is the identity tag used to look up a collision handler.
// By default it is the entity's Shape; setting a collision group replaces it
// with that group so otherwise distinct entities share one handler entry.
// It never changes which strategy resolves a pair: that is always chosen
// from the concrete shapes.
type CollisionType struct {
	Shape Shape
	Group int
}

func (t CollisionType) String() string {
	if t.Group != 0 {
		return fmt.Sprintf("group %d", t.Group)
	}
	return t.Shape.String()
}

// Entity is anything that can be added to a Space: a kinetic *Circle, or a
// static *CircleBorder or *RectangleBorder. The set is closed.
type Entity interface {
	Shape() Shape
	CollisionType() CollisionType
	Collisions() int
	Bounds() Rect
	entity() *entityBase
}

// entityBase holds the state shared by every entity.
type entityBase struct {
	group      int
	collisions int
}

func (e *entityBase) entity() *entityBase { return e }

// Collisions returns the number of collisions resolved against this entity.
func (e *entityBase) Collisions() int { return e.collisions }

// Group returns the collision group, or 0 when none is set.
func (e *entityBase) Group() int { return e.group }

// SetGroup sets the collision group used for handler lookup. A group of 0
// restores the shape identity. Negative groups are rejected.
// The group only affects handler registration, so set it before adding the
// entity to a Space.
func (e *entityBase) SetGroup(g int) error {
	if g < 0 {
		return errorf("collision group %d: %w", g, ErrInvalidArgument)
	}
	e.group = g
	return nil
}

func (e *entityBase) collisionType(s Shape) CollisionType {
	if e.group != 0 {
		return CollisionType{Group: e.group}
	}
	return CollisionType{Shape: s}
}

// --- Circle ---

// Circle is the kinetic body. Its velocity is implicit: it is always
// Location - PrevLocation, and every mutator keeps that pair consistent.
//
// Location and PrevLocation are exported for reading and for direct setup;
// prefer Place and SetVelocity, which validate their input.
type Circle struct {
	entityBase

	Location     Vec2
	PrevLocation Vec2
	// Acceleration is overwritten with the space's gravity each step.
	Acceleration Vec2

	radius float64
	mass   float64
}

// NewCircle creates a circle at rest at (x, y) with mass 1.
func NewCircle(x, y, radius float64) (*Circle, error) {
	loc := Vec2{x, y}
	if !loc.IsFinite() {
		return nil, errorf("circle location %v: %w", loc, ErrInvalidArgument)
	}
	c := &Circle{
		Location:     loc,
		PrevLocation: loc,
		mass:         1,
	}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// Shape returns ShapeCircle.
func (c *Circle) Shape() Shape { return ShapeCircle }

// CollisionType returns the circle's group if set, otherwise ShapeCircle.
func (c *Circle) CollisionType() CollisionType { return c.collisionType(ShapeCircle) }

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius. It must be positive and finite.
func (c *Circle) SetRadius(r float64) error {
	if !(r > 0) || !isFinite(r) {
		return errorf("circle radius %v: %w", r, ErrInvalidArgument)
	}
	c.radius = r
	return nil
}

// Mass returns the circle's mass.
func (c *Circle) Mass() float64 { return c.mass }

// SetMass sets the mass. It must be positive and finite.
func (c *Circle) SetMass(m float64) error {
	if !(m > 0) || !isFinite(m) {
		return errorf("circle mass %v: %w", m, ErrInvalidArgument)
	}
	c.mass = m
	return nil
}

// Velocity returns the displacement over the last step.
func (c *Circle) Velocity() Vec2 {
	return c.Location.Sub(c.PrevLocation)
}

// SetVelocity re-encodes PrevLocation so the next step continues with v.
func (c *Circle) SetVelocity(v Vec2) error {
	if !v.IsFinite() {
		return errorf("circle velocity %v: %w", v, ErrInvalidArgument)
	}
	c.PrevLocation = c.Location.Sub(v)
	return nil
}

// Place moves the circle to p, keeping its velocity.
func (c *Circle) Place(p Vec2) error {
	if !p.IsFinite() {
		return errorf("circle location %v: %w", p, ErrInvalidArgument)
	}
	v := c.Velocity()
	c.Location = p
	c.PrevLocation = p.Sub(v)
	return nil
}

// Bounds returns the circle's bounding box.
func (c *Circle) Bounds() Rect {
	return Rect{c.Location.X - c.radius, c.Location.Y - c.radius, 2 * c.radius, 2 * c.radius}
}

func (c *Circle) String() string {
	v := c.Velocity()
	return fmt.Sprintf("Circle (x=%.2f, y=%.2f, 'x=%.2f, 'y=%.2f, velocity=(%.2f, %.2f), r=%.2f, collisiontype=%v)",
		c.Location.X, c.Location.Y, c.PrevLocation.X, c.PrevLocation.Y, v.X, v.Y, c.radius, c.CollisionType())
}

// --- Borders ---

// borderBase holds the state shared by static borders.
type borderBase struct {
	entityBase

	// Location is the enclosure's center for a CircleBorder and its
	// bottom-left corner for a RectangleBorder.
	Location  Vec2
	lineWidth float64
}

// LineWidth returns the wall thickness.
func (b *borderBase) LineWidth() float64 { return b.lineWidth }

// SetLineWidth sets the wall thickness. It must be non-negative and finite.
func (b *borderBase) SetLineWidth(w float64) error {
	if !(w >= 0) || !isFinite(w) {
		return errorf("border line width %v: %w", w, ErrInvalidArgument)
	}
	b.lineWidth = w
	return nil
}

func newBorderBase(x, y, lineWidth float64) (borderBase, error) {
	b := borderBase{Location: Vec2{x, y}}
	if !b.Location.IsFinite() {
		return b, errorf("border location %v: %w", b.Location, ErrInvalidArgument)
	}
	err := b.SetLineWidth(lineWidth)
	return b, err
}

// CircleBorder is a static circular enclosure centered at Location. Bodies
// are kept inside it.
type CircleBorder struct {
	borderBase
	radius float64
}

// NewCircleBorder creates a circular enclosure centered at (x, y).
func NewCircleBorder(x, y, radius, lineWidth float64) (*CircleBorder, error) {
	base, err := newBorderBase(x, y, lineWidth)
	if err != nil {
		return nil, err
	}
	b := &CircleBorder{borderBase: base}
	if err := b.SetRadius(radius); err != nil {
		return nil, err
	}
	return b, nil
}

// Shape returns ShapeCircleBorder.
func (b *CircleBorder) Shape() Shape { return ShapeCircleBorder }

// CollisionType returns the border's group if set, otherwise
// ShapeCircleBorder.
func (b *CircleBorder) CollisionType() CollisionType { return b.collisionType(ShapeCircleBorder) }

// Radius returns the enclosure radius.
func (b *CircleBorder) Radius() float64 { return b.radius }

// SetRadius sets the enclosure radius. It must be positive and finite.
func (b *CircleBorder) SetRadius(r float64) error {
	if !(r > 0) || !isFinite(r) {
		return errorf("border radius %v: %w", r, ErrInvalidArgument)
	}
	b.radius = r
	return nil
}

// Bounds returns the bounding box of the enclosure, excluding the wall.
func (b *CircleBorder) Bounds() Rect {
	return Rect{b.Location.X - b.radius, b.Location.Y - b.radius, 2 * b.radius, 2 * b.radius}
}

// RectangleBorder is a static axis-aligned rectangular enclosure whose
// bottom-left corner is Location.
type RectangleBorder struct {
	borderBase
	width, height float64
}

// NewRectangleBorder creates a rectangular enclosure with its bottom-left
// corner at (x, y).
func NewRectangleBorder(x, y, width, height, lineWidth float64) (*RectangleBorder, error) {
	base, err := newBorderBase(x, y, lineWidth)
	if err != nil {
		return nil, err
	}
	b := &RectangleBorder{borderBase: base}
	if err := b.SetDims(width, height); err != nil {
		return nil, err
	}
	return b, nil
}

// Shape returns ShapeRectangleBorder.
func (b *RectangleBorder) Shape() Shape { return ShapeRectangleBorder }

// CollisionType returns the border's group if set, otherwise
// ShapeRectangleBorder.
func (b *RectangleBorder) CollisionType() CollisionType {
	return b.collisionType(ShapeRectangleBorder)
}

// Dims returns the interior width and height.
func (b *RectangleBorder) Dims() (width, height float64) { return b.width, b.height }

// SetDims sets the interior width and height. Both must be positive and
// finite.
func (b *RectangleBorder) SetDims(width, height float64) error {
	if !(width > 0) || !isFinite(width) || !(height > 0) || !isFinite(height) {
		return errorf("border dims %vx%v: %w", width, height, ErrInvalidArgument)
	}
	b.width, b.height = width, height
	return nil
}

// Bounds returns the interior of the enclosure.
func (b *RectangleBorder) Bounds() Rect {
	return Rect{b.Location.X, b.Location.Y, b.width, b.height}
}
