package proc

// IsNumeric reports whether s is a non-empty string of decimal digits.
// Entries in the /proc namespace that fail this are not processes.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
