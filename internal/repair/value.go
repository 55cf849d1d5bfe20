package repair

// parseValue attempts, in order, object, array, string, number, keyword,
// unquoted-string-or-call, and regex, skipping whitespace and comments
// before and after. It reports whether any production consumed input.
func (p *parser) parseValue() (bool, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNestingDepth {
		return false, newError(ErrMaxDepthExceeded, "Maximum nesting depth exceeded", p.pos)
	}

	p.parseWhitespaceAndSkipComments(true)

	processed, err := p.parseObject()
	if err != nil {
		return false, err
	}
	if !processed {
		processed, err = p.parseArray()
		if err != nil {
			return false, err
		}
	}
	if !processed {
		processed, err = p.parseString()
		if err != nil {
			return false, err
		}
	}
	if !processed {
		processed = p.parseNumber()
	}
	if !processed {
		processed = p.parseKeywords()
	}
	if !processed {
		processed, err = p.parseUnquotedString(false)
		if err != nil {
			return false, err
		}
	}
	if !processed {
		processed = p.parseRegex()
	}

	p.parseWhitespaceAndSkipComments(true)

	return processed, nil
}
