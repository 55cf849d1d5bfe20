package repair

// parseObject parses an object like {"key": "value"}, tolerating a
// leading comma, missing commas and colons, unquoted keys, and a
// missing or absent closing brace.
func (p *parser) parseObject() (bool, error) {
	if p.char(p.pos) != '{' {
		return false, nil
	}

	p.out.AppendRune('{')
	p.pos++
	p.parseWhitespaceAndSkipComments(true)

	if p.skipCharacter(',') {
		p.parseWhitespaceAndSkipComments(true)
	}

	initial := true
	for p.pos < len(p.input) && p.char(p.pos) != '}' {
		if !initial {
			if !p.parseCharacter(',') {
				p.out.InsertBeforeTrailingWhitespace(",")
			}
			p.parseWhitespaceAndSkipComments(true)
		} else {
			initial = false
		}

		p.skipEllipsis()

		processedKey, err := p.parseString()
		if err != nil {
			return false, err
		}
		if !processedKey {
			processedKey, err = p.parseUnquotedString(true)
			if err != nil {
				return false, err
			}
		}

		if !processedKey {
			c := p.char(p.pos)
			if c == '}' || c == '{' || c == ']' || c == '[' || p.pos >= len(p.input) {
				p.out.StripLastOccurrence(",", false)
				break
			}
			return false, newError(ErrObjectKey, "Object key expected", p.pos)
		}

		p.parseWhitespaceAndSkipComments(true)
		processedColon := p.parseCharacter(':')
		truncatedText := p.pos >= len(p.input)
		if !processedColon {
			if isStartOfValue(p.char(p.pos)) || truncatedText {
				p.out.InsertBeforeTrailingWhitespace(":")
			} else {
				return false, newError(ErrColonExpected, "Colon expected", p.pos)
			}
		}

		processedValue, err := p.parseValue()
		if err != nil {
			return false, err
		}
		if !processedValue {
			if processedColon || truncatedText {
				p.out.Append("null")
			} else {
				return false, newError(ErrColonExpected, "Colon expected", p.pos)
			}
		}
	}

	if p.char(p.pos) == '}' {
		p.out.AppendRune('}')
		p.pos++
	} else {
		p.out.InsertBeforeTrailingWhitespace("}")
	}

	return true, nil
}
