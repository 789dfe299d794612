package verlet

// HandlerKind selects the detection and resolution strategy of a Handler.
type HandlerKind uint8

const (
	HandlerCircleCircle          HandlerKind = iota + 1 // two kinetic circles
	HandlerCircleCircleBorder                           // circle inside a circular enclosure
	HandlerCircleRectangleBorder                        // circle inside a rectangular enclosure
)

func (k HandlerKind) String() string {
	switch k {
	case HandlerCircleCircle:
		return "Circle-Circle"
	case HandlerCircleCircleBorder:
		return "Circle-CircleBorder"
	case HandlerCircleRectangleBorder:
		return "Circle-RectangleBorder"
	default:
		return "Handler(?)"
	}
}

// contactTolerance is the slack allowed above t = 1 before a contact is
// reported as ErrPhysicsInvariant. It absorbs rounding when a body ends the
// step exactly on its boundary.
const contactTolerance = 1e-9

// Handler detects and resolves collisions for one unordered pair of
// collision types. Handlers are stateless: Check and Resolve only mutate
// the entities they are given.
type Handler struct {
	kind  HandlerKind
	types [2]CollisionType
}

// Contact describes a resolved collision.
type Contact struct {
	// Point is where the bodies touched: the point on the boundary for an
	// enclosure, the point between the two surfaces for a circle pair.
	Point Vec2
	// T is the fraction of the step travelled before contact. It is 1 for
	// circle pairs, which are corrected positionally.
	T float64
}

// NewHandler returns the handler for the pair (a, b), in either order.
// Two static borders fail with ErrInvalidArgument; any other combination
// without a strategy fails with ErrUnsupportedPair.
func NewHandler(a, b Entity) (*Handler, error) {
	if a == nil || b == nil {
		return nil, errorf("new handler: nil entity: %w", ErrInvalidArgument)
	}
	sa, sb := a.Shape(), b.Shape()
	if sa.Static() && sb.Static() {
		return nil, errorf("new handler: %v and %v are both borders: %w", sa, sb, ErrInvalidArgument)
	}
	kind := handlerKindFor(sa, sb)
	if kind == 0 {
		return nil, errorf("new handler: %v and %v: %w", sa, sb, ErrUnsupportedPair)
	}
	return &Handler{
		kind:  kind,
		types: [2]CollisionType{a.CollisionType(), b.CollisionType()},
	}, nil
}

// handlerKindFor is the single place that lists supported shape pairs.
func handlerKindFor(a, b Shape) HandlerKind {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == ShapeCircle && b == ShapeCircle:
		return HandlerCircleCircle
	case a == ShapeCircle && b == ShapeCircleBorder:
		return HandlerCircleCircleBorder
	case a == ShapeCircle && b == ShapeRectangleBorder:
		return HandlerCircleRectangleBorder
	}
	return 0
}

// Kind returns the handler's strategy.
func (h *Handler) Kind() HandlerKind { return h.kind }

// Types returns the pair of collision types the handler was registered for.
func (h *Handler) Types() (CollisionType, CollisionType) { return h.types[0], h.types[1] }

// Matches reports whether the handler was registered for (a, b) in either
// order.
func (h *Handler) Matches(a, b CollisionType) bool {
	return (h.types[0] == a && h.types[1] == b) || (h.types[0] == b && h.types[1] == a)
}

// accepts reports whether the handler's strategy applies to the shapes.
func (h *Handler) accepts(a, b Shape) bool {
	return handlerKindFor(a, b) == h.kind
}

// Check reports whether a and b collide and must be resolved. It returns
// false for shapes the handler does not cover.
func (h *Handler) Check(a, b Entity) bool {
	switch h.kind {
	case HandlerCircleCircle:
		x, y, ok := split[*Circle](a, b)
		return ok && checkCircleCircle(x, y)
	case HandlerCircleCircleBorder:
		x, y, ok := split[*CircleBorder](a, b)
		return ok && checkCircleCircleBorder(x, y)
	case HandlerCircleRectangleBorder:
		x, y, ok := split[*RectangleBorder](a, b)
		return ok && checkCircleRectangleBorder(x, y)
	}
	return false
}

// Resolve separates a and b, updates the velocities of the kinetic bodies
// and increments both collision counters. It should only be called after
// Check returned true.
func (h *Handler) Resolve(a, b Entity) error {
	_, err := h.resolve(a, b)
	return err
}

func (h *Handler) resolve(a, b Entity) (Contact, error) {
	switch h.kind {
	case HandlerCircleCircle:
		if x, y, ok := split[*Circle](a, b); ok {
			return resolveCircleCircle(x, y), nil
		}
	case HandlerCircleCircleBorder:
		if x, y, ok := split[*CircleBorder](a, b); ok {
			return resolveCircleCircleBorder(x, y)
		}
	case HandlerCircleRectangleBorder:
		if x, y, ok := split[*RectangleBorder](a, b); ok {
			return resolveCircleRectangleBorder(x, y)
		}
	}
	return Contact{}, errorf("%v handler cannot resolve %v and %v: %w", h.kind, a.Shape(), b.Shape(), ErrUnsupportedPair)
}

// split orders a pair as (circle, other), accepting either argument order.
func split[T Entity](a, b Entity) (*Circle, T, bool) {
	if c, ok := a.(*Circle); ok {
		if o, ok := b.(T); ok {
			return c, o, true
		}
	}
	if c, ok := b.(*Circle); ok {
		if o, ok := a.(T); ok {
			return c, o, true
		}
	}
	var zero T
	return nil, zero, false
}

// --- Circle / Circle ---

func checkCircleCircle(x, y *Circle) bool {
	return x.Location.Dist(y.Location) < x.radius+y.radius
}

func resolveCircleCircle(x, y *Circle) Contact {
	vx := x.Velocity()
	vy := y.Velocity()

	// Push apart along the line of centers until they just touch.
	axis := x.Location.Sub(y.Location)
	if d := axis.Len(); d > 0 {
		corr := axis.Scale(((x.radius + y.radius) - d) / d)
		x.Location = x.Location.Add(corr.Scale(0.5))
		y.Location = y.Location.Sub(corr.Scale(0.5))
	}

	// Elastic response along the corrected line of centers. Coincident
	// centers give 0/0 here; those components become zero.
	diff := x.Location.Sub(y.Location)
	distSq := diff.LenSq()
	total := x.mass + y.mass
	nvx := vx.Sub(diff.Scale(2 * y.mass / total * vx.Sub(vy).Dot(diff) / distSq)).zeroNonFinite()
	nvy := vy.Sub(diff.Neg().Scale(2 * x.mass / total * vy.Sub(vx).Dot(diff.Neg()) / distSq)).zeroNonFinite()

	x.PrevLocation = x.Location.Sub(nvx)
	y.PrevLocation = y.Location.Sub(nvy)

	x.collisions++
	y.collisions++

	point := y.Location
	if d := diff.Len(); d > 0 {
		point = y.Location.Add(diff.Scale(y.radius / d))
	}
	return Contact{Point: point, T: 1}
}

// --- Circle / CircleBorder ---

// checkCircleCircleBorder returns true when the circle has reached or
// crossed the inner wall, or has left the enclosure entirely past its wall.
// A circle comfortably inside returns false.
func checkCircleCircleBorder(x *Circle, y *CircleBorder) bool {
	d := x.Location.Dist(y.Location)
	if d >= y.radius-x.radius {
		return true
	}
	if d > y.radius+y.lineWidth+x.radius {
		return true
	}
	return false
}

func resolveCircleCircleBorder(x *Circle, y *CircleBorder) (Contact, error) {
	vel := x.Velocity()
	points, err := LineCircleIntersection(y.Location, y.radius-x.radius, x.Location, vel)
	if err != nil {
		return Contact{}, errorf("resolve %v: %w", HandlerCircleCircleBorder, err)
	}
	contact, err := ClosestPoint(x.Location, points)
	if err != nil {
		return Contact{}, errorf("resolve %v: circle path misses the boundary: %w", HandlerCircleCircleBorder, err)
	}

	t := x.PrevLocation.Dist(contact) / vel.Len()
	if !(t <= 1+contactTolerance) {
		return Contact{}, errorf("resolve %v: t = %v: %w", HandlerCircleCircleBorder, t, ErrPhysicsInvariant)
	}

	normal := y.Location.Sub(contact).Normalize()
	vel = vel.Reflect(normal)

	x.Location = contact.Add(vel.Scale(1 - t))
	x.PrevLocation = x.Location.Sub(vel)

	x.collisions++
	y.collisions++
	return Contact{Point: contact, T: t}, nil
}

// --- Circle / RectangleBorder ---

func checkCircleRectangleBorder(x *Circle, y *RectangleBorder) bool {
	return x.Location.Y+x.radius > y.Location.Y+y.height ||
		x.Location.Y-x.radius < y.Location.Y ||
		x.Location.X+x.radius > y.Location.X+y.width ||
		x.Location.X-x.radius < y.Location.X
}

// closestSide picks the wall the circle is nearest to (or deepest past).
// It returns the direction of that wall's mirror line and which end of the
// axis it sits on: 0 for the bottom/left wall, 1 for the top/right wall.
// Ties between the two axes go to the left/right walls.
func closestSide(x *Circle, y *RectangleBorder) (dir Vec2, far float64) {
	var vf, hf float64

	upper := y.Location.Y + y.height - (x.Location.Y + x.radius)
	lower := (x.Location.Y - x.radius) - y.Location.Y
	vertical := upper
	vf = 1
	if lower < upper {
		vertical = lower
		vf = 0
	}

	right := y.Location.X + y.width - (x.Location.X + x.radius)
	left := (x.Location.X - x.radius) - y.Location.X
	horizontal := left
	if right < left {
		horizontal = right
		hf = 1
	}

	if vertical < horizontal {
		return Vec2{1, 0}, vf
	}
	return Vec2{0, 1}, hf
}

func resolveCircleRectangleBorder(x *Circle, y *RectangleBorder) (Contact, error) {
	vel := x.Velocity()

	dir, far := closestSide(x, y)
	// The mirror line runs along the chosen wall, moved inward by the
	// radius so it traces the circle's center at contact.
	r := Vec2{x.radius, x.radius}
	span := Vec2{y.width, y.height}.Sub(r.Scale(2))
	linePoint := y.Location.Add(r).Add(span.Scale(far))

	contact, err := LineLineIntersection(x.Location, vel, linePoint, dir)
	if err != nil {
		return Contact{}, errorf("resolve %v: %w", HandlerCircleRectangleBorder, err)
	}

	t := x.PrevLocation.Dist(contact) / vel.Len()
	if !(t <= 1+contactTolerance) {
		return Contact{}, errorf("resolve %v: t = %v: %w", HandlerCircleRectangleBorder, t, ErrPhysicsInvariant)
	}

	// The wall normal is the mirror direction with its axes swapped.
	vel = vel.Reflect(Vec2{dir.Y, dir.X})

	x.Location = contact.Add(vel.Scale(1 - t))
	x.PrevLocation = x.Location.Sub(vel)

	x.collisions++
	y.collisions++
	return Contact{Point: contact, T: t}, nil
}
