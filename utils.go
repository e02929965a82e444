// utils.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package boggle

// containsByte reports whether b is present in set.
func containsByte(set []byte, b byte) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}
