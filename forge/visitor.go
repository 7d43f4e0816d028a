package forge

import "proxy-generator/internal/common"

// Visitor is one transformation wrapper applied by the emission engine to
// the source of a generated unit.
type Visitor interface {
	// Rewrite transforms the generated source and returns the result.
	Rewrite(src []byte) ([]byte, error)
}

// VisitorChain is an ordered, append-only sequence of visitors. Chains are
// immutable; Append returns a new chain.
type VisitorChain struct {
	visitors []Visitor
}

// NewVisitorChain returns an empty chain.
func NewVisitorChain() *VisitorChain {
	return &VisitorChain{}
}

// Append returns a new chain with v at the tail. The receiver is unchanged.
func (c *VisitorChain) Append(v Visitor) (*VisitorChain, error) {
	if v == nil {
		return nil, ErrNilVisitor
	}

	visitors := make([]Visitor, 0, len(c.visitors)+1)
	visitors = append(visitors, c.visitors...)
	visitors = append(visitors, v)

	return &VisitorChain{visitors: visitors}, nil
}

// Visitors returns the chain's visitors in application order.
func (c *VisitorChain) Visitors() []Visitor {
	return common.Clone(c.visitors)
}

// Len returns the number of visitors in the chain.
func (c *VisitorChain) Len() int {
	return len(c.visitors)
}

// Apply runs every visitor over src in chain order and returns the result.
// The first visitor error aborts the run.
func (c *VisitorChain) Apply(src []byte) ([]byte, error) {
	out := src

	for _, v := range c.visitors {
		var err error

		out, err = v.Rewrite(out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
