package registry

const (
	maxBatchIDLen     = 20
	maxVaccineNameLen = 50
)

// ValidBatchID reports whether id is a well-formed batch identifier: at
// most 20 characters, digits and uppercase A-F only.
func ValidBatchID(id string) bool {
	if len(id) == 0 || len(id) > maxBatchIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// ValidVaccineName reports whether name is well-formed: at most 50
// bytes with no whitespace.
func ValidVaccineName(name string) bool {
	if len(name) == 0 || len(name) > maxVaccineNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		if isSpace(name[i]) {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}
