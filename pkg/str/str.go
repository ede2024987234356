// Package str contains string utilities.
package str

// In returns true if string v is one of s strings.
func In(v string, s ...string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Uniq returns a new slice containing only unique strings,
// preserving the order in which they first appear.
func Uniq(strs ...string) []string {
	seen := make(map[string]struct{}, len(strs))
	out := make([]string, 0, len(strs))
	for _, s := range strs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
