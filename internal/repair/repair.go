package repair

// Repair consumes text that may not be valid JSON and returns a
// syntactically valid JSON document that preserves the author's
// apparent intent. It fails with a *Error carrying a position when no
// reasonable repair exists.
//
// Repair is a pure function: it neither logs nor touches any state
// outside the call, and calling it concurrently from multiple
// goroutines on independent inputs is safe.
func Repair(text string) (string, error) {
	p := newParser(text)

	p.parseMarkdownCodeBlock([]string{"```", "[```", "{```"})

	processed, err := p.parseValue()
	if err != nil {
		return "", err
	}
	if !processed {
		return "", newError(ErrUnexpectedEnd, "Unexpected end of json string", len(p.input))
	}

	p.parseMarkdownCodeBlock([]string{"```", "```]", "```}"})

	processedComma := p.parseCharacter(',')
	if processedComma {
		p.parseWhitespaceAndSkipComments(true)
	}

	if isStartOfValue(p.char(p.pos)) && endsWithCommaOrNewline(p.out.String()) {
		// A new value starts right after what looked like the root value:
		// treat the input as NDJSON and wrap every value into one array.
		if !processedComma {
			p.out.InsertBeforeTrailingWhitespace(",")
		}
		if err := p.parseNewlineDelimitedJSON(); err != nil {
			return "", err
		}
	} else if processedComma {
		p.out.StripLastOccurrence(",", false)
	}

	// Tolerate excess closing brackets/braces after a complete value.
	for p.char(p.pos) == '}' || p.char(p.pos) == ']' {
		p.pos++
		p.parseWhitespaceAndSkipComments(true)
	}

	if p.pos >= len(p.input) {
		return p.out.String(), nil
	}

	return "", newError(ErrUnexpectedChar, `Unexpected character "`+string(p.char(p.pos))+`"`, p.pos)
}

// endsWithCommaOrNewline reports whether s ends with a comma or newline
// followed only by spaces, tabs, or carriage returns.
func endsWithCommaOrNewline(s string) bool {
	rs := []rune(s)
	i := len(rs)
	for i > 0 && (rs[i-1] == ' ' || rs[i-1] == '\t' || rs[i-1] == '\r') {
		i--
	}
	return i > 0 && (rs[i-1] == ',' || rs[i-1] == '\n')
}
