package domain

// IsID reports whether s has the shape of a store identifier: exactly 24
// hexadecimal characters. A value failing this check is malformed input,
// never a missing entity.
func IsID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
