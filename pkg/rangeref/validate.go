package rangeref

// ValidateName checks that name can be used as a range name: only ASCII
// letters, digits and underscores, and not readable as a numeric literal.
func ValidateName(name string) error {
	if name == "" {
		return ErrInvalidNameChars
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return ErrInvalidNameChars
		}
	}
	if isNumericLiteral(name) {
		return ErrAmbiguousName
	}
	return nil
}

// isNumericLiteral reports whether s is entirely consumed by the number
// grammar: decimal digits with an optional e/E digit run, or 0x/0X hex
// digits with an optional p/P hex digit run.
func isNumericLiteral(s string) bool {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		i := skip(s, 2, isHexDigit)
		if i < len(s) && (s[i] == 'p' || s[i] == 'P') {
			i = skip(s, i+1, isHexDigit)
		}
		return i == len(s)
	}

	if len(s) == 0 || !isDigit(s[0]) {
		return false
	}
	i := skip(s, 0, isDigit)
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i = skip(s, i+1, isDigit)
	}
	return i == len(s)
}

func skip(s string, i int, class func(byte) bool) int {
	for i < len(s) && class(s[i]) {
		i++
	}
	return i
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
