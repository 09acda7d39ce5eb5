package toml

// Predicates over bytes, stateless and cheap. Mirrors the character-class
// helpers the parser leans on throughout parseItem/parseVal/parseTable.

func isBareKeyChar(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isSpaces(b byte) bool {
	return b == ' ' || b == '\t'
}

func isNL(b byte) bool {
	return b == '\n' || b == '\r'
}

func isKVSep(b byte) bool {
	return b == ' ' || b == '\t' || b == '='
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// notIn reports whether b is absent from set.
func notIn(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return false
		}
	}
	return true
}
