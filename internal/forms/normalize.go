package forms

// NormalizeRefs coerces a raw multi-valued form field into a slice of
// references: an absent value becomes an empty slice, a single scalar is
// wrapped, and a slice passes through unchanged. Every validation rule that
// assumes a slice shape runs after this. The function is total and
// idempotent.
func NormalizeRefs(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case string:
		return []string{v}
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	default:
		return []string{}
	}
}
