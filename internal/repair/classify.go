package repair

// Lexical classifiers: pure predicates over runes (Unicode code points).
// The parser indexes input by rune rather than by UTF-16 code unit; a
// supplementary-plane character is therefore one index position here,
// not two, but every predicate below still only ever recognizes
// characters in the Basic Multilingual Plane, so behavior on ASCII and
// common Unicode punctuation is unaffected by that choice. See
// DESIGN.md for the reasoning.

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isValidStringCharacter reports whether r may appear verbatim (or after
// the control-character repair) inside a JSON string body. Matches the
// reference behavior of comparing against U+0020 rather than checking a
// full valid Unicode scalar range.
func isValidStringCharacter(r rune) bool {
	return r >= 0x0020
}

// isDelimiter is the broader delimiter set used to detect the end of a
// number, keyword, or unquoted value.
func isDelimiter(r rune) bool {
	switch r {
	case ',', ':', '[', ']', '/', '{', '}', '(', ')', '\n', '+':
		return true
	}
	return false
}

// isUnquotedStringDelimiter is the stricter delimiter set used while
// recovering an unquoted string or a string missing its closing quote.
func isUnquotedStringDelimiter(r rune) bool {
	switch r {
	case ',', '[', ']', '/', '{', '}', '\n', '+':
		return true
	}
	return false
}

func isFunctionNameCharStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isFunctionNameChar(r rune) bool {
	return isFunctionNameCharStart(r) || isDigit(r)
}

func isStartOfValue(r rune) bool {
	if isQuote(r) {
		return true
	}
	return r == '[' || r == '{' || r == '-' || isDigit(r) || isFunctionNameCharStart(r)
}

func isControlCharacter(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\b', '\f':
		return true
	}
	return false
}

// isWhitespace matches ASCII space, newline, tab, and carriage return.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

// isWhitespaceExceptNewline matches the same set as isWhitespace but
// without newline, used while a string is speculatively closing so a
// newline can still terminate the look-ahead scan.
func isWhitespaceExceptNewline(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isSpecialWhitespace matches Unicode space look-alikes that the
// repair normalizes to an ordinary ASCII space.
func isSpecialWhitespace(r rune) bool {
	switch {
	case r == 0x00a0: // non-breaking space
		return true
	case r >= 0x2000 && r <= 0x200a: // en quad .. hair space
		return true
	case r == 0x202f: // narrow no-break space
		return true
	case r == 0x205f: // medium mathematical space
		return true
	case r == 0x3000: // ideographic space
		return true
	}
	return false
}

// isQuote matches any quote-like character, double or single class.
func isQuote(r rune) bool {
	return isDoubleQuoteLike(r) || isSingleQuoteLike(r)
}

func isDoubleQuoteLike(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

func isDoubleQuote(r rune) bool {
	return r == '"'
}

func isSingleQuoteLike(r rune) bool {
	return r == '\'' || r == '‘' || r == '’' || r == '`' || r == '´'
}

func isSingleQuote(r rune) bool {
	return r == '\''
}
