//go:build unit || e2e

package testutil

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies muts to the object stored under key, creating it when absent.
func Nested(key string, muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			inner = map[string]any{}
			m[key] = inner
		}
		for _, f := range muts {
			f(inner)
		}
	}
}
