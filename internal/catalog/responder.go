package catalog

// Respond looks c up in table and falls back to the Default entry. The zero
// value is only returned when the table has no Default entry either.
func Respond[V any](c Category, table map[Category]V) V {
	if v, ok := table[c]; ok {
		return v
	}
	return table[Default]
}

// Lookup is Respond for callers that must know whether anything was found,
// e.g. optional tables without a Default entry.
func Lookup[V any](c Category, table map[Category]V) (V, bool) {
	if v, ok := table[c]; ok {
		return v, true
	}
	v, ok := table[Default]
	return v, ok
}
