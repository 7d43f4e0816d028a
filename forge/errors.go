package forge

import "errors"

var (
	// ErrNilMatcher is returned when a selection or rule is given a nil method matcher.
	ErrNilMatcher = errors.New("forge: nil method matcher")

	// ErrNilBehavior is returned when a selection is intercepted with a nil behavior.
	ErrNilBehavior = errors.New("forge: nil behavior")

	// ErrNilFactory is returned when a nil attribute appender factory is supplied.
	ErrNilFactory = errors.New("forge: nil attribute appender factory")

	// ErrNilAppender is returned when a nil type attribute appender is supplied.
	ErrNilAppender = errors.New("forge: nil type attribute appender")

	// ErrNilType is returned when a nil type descriptor is supplied.
	ErrNilType = errors.New("forge: nil type descriptor")

	// ErrNilStrategy is returned when a nil naming or constructor strategy is supplied.
	ErrNilStrategy = errors.New("forge: nil strategy")

	// ErrNilVisitor is returned when a nil visitor is appended to the chain.
	ErrNilVisitor = errors.New("forge: nil visitor")

	// ErrNotInterface is returned when WithImplementing is given a non-interface type.
	ErrNotInterface = errors.New("forge: type is not an interface")

	// ErrNotImplementable is returned when a requested parent type is final,
	// a basic type or an array type.
	ErrNotImplementable = errors.New("forge: parent type is not implementable")

	// ErrInvalidFormatVersion is returned for a format version that is not a
	// valid Go release tag.
	ErrInvalidFormatVersion = errors.New("forge: invalid format version")

	// ErrInvalidModifiers is returned when modifiers outside the type mask are set.
	ErrInvalidModifiers = errors.New("forge: modifiers not applicable to a type")

	// ErrInvalidPrefix is returned when a naming prefix is not a valid Go identifier.
	ErrInvalidPrefix = errors.New("forge: naming prefix is not a valid identifier")
)
