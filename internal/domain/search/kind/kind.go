package kind

// Kind is the type tag of a searchable entity.
type Kind string

// Entity kinds, listed in ranking order.
const (
	Tool    Kind = "tool"
	Article Kind = "article"
)

// All returns every kind in ranking order.
func All() []Kind {
	return []Kind{Tool, Article}
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k == Tool || k == Article
}

// Rank orders kinds in a merged result list; lower ranks come first.
// Unknown kinds sort after every known one.
func (k Kind) Rank() int {
	switch k {
	case Tool:
		return 0
	case Article:
		return 1
	default:
		return 2
	}
}

// Scope selects which entity sources a search touches.
type Scope string

// Scope constants.
const (
	// ScopeAll searches every source.
	ScopeAll      Scope = "all"
	ScopeTools    Scope = "tools"
	ScopeArticles Scope = "articles"
)

// IsValid checks if the scope is one of the supported values.
func (s Scope) IsValid() bool {
	return s == ScopeAll || s == ScopeTools || s == ScopeArticles
}

// Includes reports whether a source of kind k takes part in the scope.
func (s Scope) Includes(k Kind) bool {
	switch s {
	case ScopeAll:
		return true
	case ScopeTools:
		return k == Tool
	case ScopeArticles:
		return k == Article
	default:
		return false
	}
}
