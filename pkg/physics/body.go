// pkg/physics/body.go
package physics

// Body is a dynamic circle body. Static world geometry lives in Box, not here.
type Body struct {
	position     Vec2
	lastPosition Vec2
	velocity     Vec2
	force        Vec2

	angle           float64
	angularVelocity float64
	torque          float64

	mass       float64
	invMass    float64
	inertia    float64
	invInertia float64

	// Radius of the circle shape, world units.
	Radius float64

	// GravityScale multiplies world gravity for this body. Negative values
	// make the body fall upward.
	GravityScale float64

	// Continuous enables swept collision against static boxes, so fast
	// bodies cannot tunnel through thin platforms in one step.
	Continuous bool

	Restitution float64
	Damping     float64

	// Entity is a back-reference to the owning ECS entity, 0 if unowned.
	Entity uint64
}

// NewBody creates a dynamic circle body at rest.
func NewBody(position Vec2, radius, mass float64) *Body {
	invMass := 0.0
	if mass > 0 {
		invMass = 1.0 / mass
	}
	// Solid disk: I = m*r^2/2
	inertia := mass * radius * radius / 2
	invInertia := 0.0
	if inertia > 0 {
		invInertia = 1.0 / inertia
	}
	return &Body{
		position:     position,
		lastPosition: position,
		mass:         mass,
		invMass:      invMass,
		inertia:      inertia,
		invInertia:   invInertia,
		Radius:       radius,
		GravityScale: 1.0,
		Restitution:  0.35,
		Damping:      0.999,
	}
}

func (b *Body) Position() Vec2 { return b.position }

func (b *Body) LastPosition() Vec2 { return b.lastPosition }

func (b *Body) Velocity() Vec2 { return b.velocity }

func (b *Body) Angle() float64 { return b.angle }

func (b *Body) Mass() float64 { return b.mass }

// SetPosition moves the body instantly (teleport). Velocity is preserved;
// the swept-collision history is reset so the jump is not treated as motion.
func (b *Body) SetPosition(p Vec2) {
	b.position = p
	b.lastPosition = p
}

func (b *Body) SetVelocity(v Vec2) {
	b.velocity = v
}

// ApplyForce accumulates a force for the next Step.
func (b *Body) ApplyForce(f Vec2) {
	b.force = b.force.Add(f)
}

// ApplyImpulse changes velocity immediately, scaled by inverse mass.
func (b *Body) ApplyImpulse(impulse Vec2) {
	b.velocity = b.velocity.Add(impulse.Scale(b.invMass))
}

// ApplyTorque accumulates torque for the next Step.
func (b *Body) ApplyTorque(t float64) {
	b.torque += t
}

// integrate advances the body by dt under the given world gravity,
// semi-implicit Euler with damping.
func (b *Body) integrate(dt float64, gravity Vec2) {
	b.lastPosition = b.position

	b.force = b.force.Add(gravity.Scale(b.GravityScale * b.mass))

	acceleration := b.force.Scale(b.invMass)
	b.velocity = b.velocity.Add(acceleration.Scale(dt)).Scale(b.Damping)
	b.position = b.position.Add(b.velocity.Scale(dt))

	angularAcceleration := b.torque * b.invInertia
	b.angularVelocity = (b.angularVelocity + angularAcceleration*dt) * b.Damping
	b.angle += b.angularVelocity * dt

	b.force = Vec2{}
	b.torque = 0
}
