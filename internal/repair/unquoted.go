package repair

// parseUnquotedString repairs a bare identifier by wrapping it in
// quotes, a MongoDB-style function wrapper like NumberLong("2") by
// discarding the wrapper and keeping only the inner value, or a JSONP
// call like callback({...}); the same way. isKey additionally stops the
// run at a colon, since this is also how the object production repairs
// an unquoted key.
func (p *parser) parseUnquotedString(isKey bool) (bool, error) {
	start := p.pos

	if !isFunctionNameCharStart(p.char(p.pos)) {
		return false, nil
	}

	if isFunctionNameCharStart(p.char(p.pos)) {
		for p.pos < len(p.input) && isFunctionNameChar(p.char(p.pos)) {
			p.pos++
		}

		j := p.pos
		for isWhitespace(p.char(j)) {
			j++
		}

		if p.char(j) == '(' {
			p.pos = j + 1

			if _, err := p.parseValue(); err != nil {
				return false, err
			}

			if p.char(p.pos) == ')' {
				p.pos++
				if p.char(p.pos) == ';' {
					p.pos++
				}
			}

			return true, nil
		}
	}

	for p.pos < len(p.input) &&
		!isUnquotedStringDelimiter(p.char(p.pos)) &&
		!isQuote(p.char(p.pos)) &&
		(!isKey || p.char(p.pos) != ':') {
		p.pos++
	}

	if p.char(p.pos-1) == ':' && looksLikeHTTPURLStart(string(p.input[start:min(p.pos+2, len(p.input))])) {
		for p.pos < len(p.input) && isURLChar(p.char(p.pos)) {
			p.pos++
		}
	}

	if p.pos > start {
		for p.pos > 0 && isWhitespace(p.char(p.pos-1)) {
			p.pos--
		}

		symbol := string(p.input[start:p.pos])
		if symbol == "undefined" {
			p.out.Append("null")
		} else {
			p.out.Append(`"` + symbol + `"`)
		}

		if p.char(p.pos) == '"' {
			p.pos++
		}

		return true, nil
	}

	return false, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
