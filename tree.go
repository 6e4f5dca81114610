package lingo

import "strings"

// Fragment is a partial translation tree keyed by locale at the top level.
// Values underneath are arbitrarily nested map[string]any with string (or
// pluralization record) leaves, as produced by namespace resolvers or
// passed to RegisterTranslations.
type Fragment = map[string]any

// mergeLocale merges a single-locale fragment into dst. The merge is
// shallow at the locale level: top-level keys of the fragment replace
// whole subtrees, they are never reconciled deeper. Keys are only ever
// added or replaced, never deleted.
func mergeLocale(dst, frag map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(frag))
	}
	for k, v := range frag {
		dst[k] = v
	}
	return dst
}

// lookupPath walks tree segment by segment and returns the value at the
// end of the path. Resolution stops as soon as an intermediate value is
// not a traversable mapping; absence is reported through ok, never an
// error.
func lookupPath(tree map[string]any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	var current any = tree
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// splitScope splits a dotted scope into path segments. A blank scope
// yields nil.
func splitScope(scope string) []string {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return nil
	}
	return strings.Split(scope, ".")
}

// copyTree returns a deep copy of a translation subtree so callers can
// hold the snapshot without racing with later merges.
func copyTree(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			dst[k] = copyTree(m)
			continue
		}
		dst[k] = v
	}
	return dst
}
