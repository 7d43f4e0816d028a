package profile

import (
	"fmt"
	goversion "go/version"
	"path"
	"strings"

	"golang.org/x/mod/module"

	"proxy-generator/descriptor"
	"proxy-generator/internal/diagnostic"
)

// Validate validates a profile against the given descriptor graph.
// This is a structural validation step only; it does not prove that the
// resulting configuration can be emitted.
func Validate(p *Profile, graph *descriptor.Graph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError("profile_is_nil", "profile is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "descriptor graph is nil", "", "")
		return res
	}

	if p.Version != "1" {
		res.AddError("unknown_version", fmt.Sprintf("unknown profile version %q", p.Version), "version", p.Version)
	}

	if p.Format != "" && !goversion.IsValid(p.Format) {
		res.AddError("invalid_format", fmt.Sprintf("%q is not a Go release tag", p.Format), "format", p.Format)
	}

	if p.Name.Prefix != "" && !descriptor.IsIdentifier(p.Name.Prefix) {
		res.AddError("invalid_prefix", fmt.Sprintf("prefix %q is not a valid identifier", p.Name.Prefix), "name.prefix", p.Name.Prefix)
	}

	if _, err := ParseModifiers(p.Modifiers); err != nil {
		res.AddError("unknown_modifier", err.Error(), "modifiers", "")
	}

	for i, ref := range p.Implements {
		subject := fmt.Sprintf("implements[%d]", i)
		validateInterfaceRef(res, subject, ref, graph)
	}

	if p.Ignore != nil {
		validateMatchSpec(res, "ignore", p.Ignore, graph)
	}

	for i := range p.Rules {
		r := &p.Rules[i]
		subject := fmt.Sprintf("rules[%d]", i)

		if _, err := ParseBehavior(r.Behavior); err != nil {
			res.AddError("unknown_behavior", err.Error(), subject, r.Behavior)
		}

		validateMatchSpec(res, subject+".match", &r.Match, graph)
		validateAnnotations(res, subject, r.Annotations)
	}

	validateAnnotations(res, "annotations", p.Annotations)

	return res
}

// validateInterfaceRef checks that a type reference resolves to an interface.
func validateInterfaceRef(res *diagnostic.Diagnostics, subject, ref string, graph *descriptor.Graph) {
	if dot := strings.LastIndex(ref, "."); dot > 0 && strings.Contains(ref[:dot], "/") {
		if err := module.CheckImportPath(ref[:dot]); err != nil {
			res.AddError("invalid_import_path", err.Error(), subject, ref)
			return
		}
	}

	t := graph.Resolve(ref)
	if t == nil {
		res.AddError("type_not_found", fmt.Sprintf("type %q not found", ref), subject, ref)
		return
	}

	if !t.IsInterface() {
		res.AddError("not_an_interface", fmt.Sprintf("type %q is not an interface (kind: %s)", ref, t.Kind), subject, ref)
	}
}

// validateMatchSpec checks a match spec and its nested specs.
func validateMatchSpec(res *diagnostic.Diagnostics, subject string, s *MatchSpec, graph *descriptor.Graph) {
	switch s.Kind {
	case "", KindAny, KindMethod, KindConstructor:
	default:
		res.AddError("unknown_match_kind", fmt.Sprintf("unknown match kind %q", s.Kind), subject, s.Kind)
	}

	if s.NameGlob != "" {
		if _, err := path.Match(s.NameGlob, ""); err != nil {
			res.AddError("invalid_name_glob", fmt.Sprintf("malformed pattern %q", s.NameGlob), subject, s.NameGlob)
		}
	}

	if s.DeclaredBy != "" && graph.Resolve(s.DeclaredBy) == nil {
		res.AddError("type_not_found", fmt.Sprintf("type %q not found", s.DeclaredBy), subject, s.DeclaredBy)
	}

	for i := range s.All {
		validateMatchSpec(res, fmt.Sprintf("%s.all[%d]", subject, i), &s.All[i], graph)
	}

	for i := range s.Any {
		validateMatchSpec(res, fmt.Sprintf("%s.any[%d]", subject, i), &s.Any[i], graph)
	}

	if s.Not != nil {
		validateMatchSpec(res, subject+".not", s.Not, graph)
	}
}

// validateAnnotations checks annotation specs for missing names and
// negative parameter indexes.
func validateAnnotations(res *diagnostic.Diagnostics, subject string, specs []AnnotationSpec) {
	for i, a := range specs {
		annSubject := fmt.Sprintf("%s.annotations[%d]", subject, i)

		if a.Name == "" {
			res.AddError("missing_annotation_name", "annotation has no name", annSubject, "")
		}

		if a.Parameter != nil && *a.Parameter < 0 {
			res.AddError("invalid_parameter_index", fmt.Sprintf("negative parameter index %d", *a.Parameter), annSubject, a.Name)
		}
	}
}
