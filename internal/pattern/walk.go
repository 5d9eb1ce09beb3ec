package pattern

// References returns every variable reference in p, in rendering order,
// duplicates included.
func References(p Pattern) []Reference {
	w := &walker{}
	w.walkPattern(p)
	return w.refs
}

// NamedVariables returns the distinct visible named variables of patterns
// in first-appearance order. Anonymous variables are never reported.
func NamedVariables(patterns ...Pattern) []UnboundVariable {
	seen := make(map[Reference]bool)
	var out []UnboundVariable
	for _, p := range patterns {
		for _, ref := range References(p) {
			if !ref.IsName() || !ref.IsVisible() || seen[ref] {
				continue
			}
			seen[ref] = true
			out = append(out, UnboundVariable{Reference: ref})
		}
	}
	return out
}

// walker accumulates references during traversal.
type walker struct {
	refs []Reference
}

func (w *walker) walkPattern(p Pattern) {
	switch pat := p.(type) {
	case nil:
		return
	case Conjunction:
		for _, child := range pat.patterns {
			w.walkPattern(child)
		}
	case Disjunction:
		for _, alt := range pat.alternatives {
			w.walkPattern(alt)
		}
	case Negation:
		w.walkPattern(pat.inner)
	case ConstraintPattern:
		w.walkConstraint(pat.Constraint)
	case ConceptVariable:
		w.walkVariable(pat)
	}
}

func (w *walker) walkVariable(v ConceptVariable) {
	w.refs = append(w.refs, v.Reference)
	for _, c := range v.Constraints() {
		w.walkConstraint(c)
	}
}

func (w *walker) walkConstraint(c Constraint) {
	switch con := c.(type) {
	case IsConstraint:
		w.walkVariable(con.Variable())
	}
}
