package forge

// Behavior is the opaque method implementation strategy the emission engine
// applies to a selected method. The core only carries behaviors through the
// registry; it never interprets them.
type Behavior interface {
	// Describe returns a short name for plans and diagnostics.
	Describe() string
}

type abstractBehavior struct{}

func (abstractBehavior) Describe() string { return "abstract" }

// Abstract is the behavior leaving selected methods without bodies: the
// generated type declares them but does not implement them.
var Abstract Behavior = abstractBehavior{}

type stubBehavior struct{}

func (stubBehavior) Describe() string { return "stub" }

// Stub returns the behavior implementing selected methods as bodies that
// return zero values.
func Stub() Behavior {
	return stubBehavior{}
}

type delegateBehavior struct {
	target string
}

func (b delegateBehavior) Describe() string { return "delegate:" + b.target }

// Target returns the field the delegation forwards to.
func (b delegateBehavior) Target() string { return b.target }

// Delegate returns the behavior forwarding selected methods to the named
// field of the generated type.
func Delegate(target string) Behavior {
	return delegateBehavior{target: target}
}
