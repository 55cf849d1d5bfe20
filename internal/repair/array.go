package repair

// parseArray parses an array like ["item1", "item2", ...], tolerating a
// leading comma, missing commas, a trailing comma, and a missing
// closing bracket.
func (p *parser) parseArray() (bool, error) {
	if p.char(p.pos) != '[' {
		return false, nil
	}

	p.out.AppendRune('[')
	p.pos++
	p.parseWhitespaceAndSkipComments(true)

	if p.skipCharacter(',') {
		p.parseWhitespaceAndSkipComments(true)
	}

	initial := true
	for p.pos < len(p.input) && p.char(p.pos) != ']' {
		if !initial {
			if !p.parseCharacter(',') {
				p.out.InsertBeforeTrailingWhitespace(",")
			}
		} else {
			initial = false
		}

		p.skipEllipsis()

		processedValue, err := p.parseValue()
		if err != nil {
			return false, err
		}
		if !processedValue {
			p.out.StripLastOccurrence(",", false)
			break
		}
	}

	if p.char(p.pos) == ']' {
		p.out.AppendRune(']')
		p.pos++
	} else {
		p.out.InsertBeforeTrailingWhitespace("]")
	}

	return true, nil
}
