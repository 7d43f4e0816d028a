package profile

import (
	"fmt"

	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/forge"
	"proxy-generator/matcher"
)

// Apply folds a validated profile into a forge configuration through the
// fluent API. Rules are applied in file order; because the registry is
// prepend-only, a later rule in the file takes precedence over an earlier
// one when their selections overlap.
func Apply(p *Profile, graph *descriptor.Graph) (*forge.Config, error) {
	cfg := forge.NewConfig()

	var err error

	if p.Format != "" {
		if cfg, err = cfg.WithFormatVersion(p.Format); err != nil {
			return nil, err
		}
	}

	if p.Name.Prefix != "" {
		strategy, serr := forge.NewSuffixingRandom(p.Name.Prefix)
		if serr != nil {
			return nil, serr
		}

		if cfg, err = cfg.WithNamingStrategy(strategy); err != nil {
			return nil, err
		}
	}

	if len(p.Modifiers) > 0 {
		mods, merr := ParseModifiers(p.Modifiers)
		if merr != nil {
			return nil, merr
		}

		if cfg, err = cfg.WithModifiers(mods); err != nil {
			return nil, err
		}
	}

	if p.Ignore != nil {
		ignore, merr := BuildMatcher(p.Ignore, graph)
		if merr != nil {
			return nil, merr
		}

		if cfg, err = cfg.WithIgnoredMethods(ignore); err != nil {
			return nil, err
		}
	}

	if len(p.Annotations) > 0 {
		if cfg, err = cfg.WithTypeAnnotations(annotations(p.Annotations)...); err != nil {
			return nil, err
		}
	}

	for i, ref := range p.Implements {
		iface := graph.Resolve(ref)
		if iface == nil {
			return nil, fmt.Errorf("implements[%d]: type %q not found", i, ref)
		}

		sel, serr := cfg.WithImplementing(iface)
		if serr != nil {
			return nil, fmt.Errorf("implements[%d]: %w", i, serr)
		}

		cfg = sel.Config()
	}

	for i := range p.Rules {
		if cfg, err = applyRule(cfg, &p.Rules[i], graph); err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
	}

	return cfg, nil
}

// applyRule walks one rule through the interception protocol.
func applyRule(cfg *forge.Config, r *Rule, graph *descriptor.Graph) (*forge.Config, error) {
	m, err := BuildMatcher(&r.Match, graph)
	if err != nil {
		return nil, err
	}

	var sel *forge.MatchedSelection

	switch r.Match.Kind {
	case KindMethod:
		sel, err = cfg.Method(m)
	case KindConstructor:
		sel, err = cfg.Constructor(m)
	default:
		sel, err = cfg.Invokable(m)
	}

	if err != nil {
		return nil, err
	}

	behavior, err := ParseBehavior(r.Behavior)
	if err != nil {
		return nil, err
	}

	target, err := sel.Intercept(behavior)
	if err != nil {
		return nil, err
	}

	for _, a := range r.Annotations {
		if a.Parameter != nil {
			target, err = target.AnnotateParameter(*a.Parameter, annotation(a))
		} else {
			target, err = target.AnnotateMethod(annotation(a))
		}

		if err != nil {
			return nil, err
		}
	}

	return target.Materialize(), nil
}

// BuildMatcher converts a match spec into a matcher. The Kind field is
// handled by the protocol entry points, not here; a zero spec matches
// everything.
func BuildMatcher(s *MatchSpec, graph *descriptor.Graph) (matcher.Matcher, error) {
	var members []matcher.Matcher

	if s.Name != "" {
		members = append(members, matcher.Named(s.Name))
	}

	if s.NameGlob != "" {
		members = append(members, matcher.NameMatches(s.NameGlob))
	}

	if s.DeclaredBy != "" {
		t := graph.Resolve(s.DeclaredBy)
		if t == nil {
			return nil, fmt.Errorf("type %q not found", s.DeclaredBy)
		}

		members = append(members, matcher.DeclaredBy(t))
	}

	if s.Synthetic {
		members = append(members, matcher.IsSynthetic())
	}

	for i := range s.All {
		m, err := BuildMatcher(&s.All[i], graph)
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	if len(s.Any) > 0 {
		var alternatives []matcher.Matcher

		for i := range s.Any {
			m, err := BuildMatcher(&s.Any[i], graph)
			if err != nil {
				return nil, err
			}

			alternatives = append(alternatives, m)
		}

		members = append(members, matcher.Or(alternatives...))
	}

	if s.Not != nil {
		m, err := BuildMatcher(s.Not, graph)
		if err != nil {
			return nil, err
		}

		members = append(members, matcher.Not(m))
	}

	if len(members) == 0 {
		return matcher.Any(), nil
	}

	if len(members) == 1 {
		return members[0], nil
	}

	return matcher.And(members...), nil
}

// annotations converts annotation specs into attribute annotations.
func annotations(specs []AnnotationSpec) []attribute.Annotation {
	out := make([]attribute.Annotation, 0, len(specs))
	for _, s := range specs {
		out = append(out, annotation(s))
	}

	return out
}

func annotation(s AnnotationSpec) attribute.Annotation {
	return attribute.Annotation{Name: s.Name, Values: s.Values}
}
