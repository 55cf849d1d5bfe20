package repair

// isEscapeLetter reports whether r is one of the letters JSON recognizes
// after a backslash: " \ / b f n r t.
func isEscapeLetter(r rune) bool {
	switch r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

// controlEscape returns the two-character JSON escape for an unescaped
// control character found in a string body.
func controlEscape(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	}
	return ""
}

// parseString parses a string enclosed by (possibly mismatched or
// missing) quotes. See parseStringMode for the retry machinery.
func (p *parser) parseString() (bool, error) {
	return p.parseStringMode(false, -1)
}

// parseStringMode is the only backtracking production in the engine. It
// tries an optimistic read first (stopAtDelimiter=false, stopAtIndex=-1)
// and, when the character following a candidate closing quote doesn't
// look like what should follow a string, rewinds to iBefore/oBefore and
// retries with a different termination policy: either a specific index
// at which to force the close (stopAtIndex), or "stop at the first
// unquoted-string delimiter" (stopAtDelimiter). At most three passes are
// needed for any input.
func (p *parser) parseStringMode(stopAtDelimiter bool, stopAtIndex int) (bool, error) {
	skipEscapeChars := p.char(p.pos) == '\\'
	if skipEscapeChars {
		p.pos++
	}

	if !isQuote(p.char(p.pos)) {
		return false, nil
	}

	var isEndQuote func(rune) bool
	switch {
	case isDoubleQuote(p.char(p.pos)):
		isEndQuote = isDoubleQuote
	case isSingleQuote(p.char(p.pos)):
		isEndQuote = isSingleQuote
	case isSingleQuoteLike(p.char(p.pos)):
		isEndQuote = isSingleQuoteLike
	default:
		isEndQuote = isDoubleQuoteLike
	}

	iBefore := p.pos
	oBefore := p.out.Len()

	str := newBuffer()
	str.Append(`"`)
	p.pos++

	for {
		if p.pos >= len(p.input) {
			iPrev := p.prevNonWhitespaceIndex(p.pos - 1)
			if !stopAtDelimiter && isDelimiter(p.char(iPrev)) {
				p.pos = iBefore
				p.out.Truncate(oBefore)
				return p.parseStringMode(true, -1)
			}

			str.InsertBeforeTrailingWhitespace(`"`)
			p.out.Append(str.String())
			return true, nil
		}

		if stopAtIndex >= 0 && p.pos >= stopAtIndex {
			str.InsertBeforeTrailingWhitespace(`"`)
			p.out.Append(str.String())
			return true, nil
		}

		switch {
		case isEndQuote(p.char(p.pos)):
			iQuote := p.pos
			oQuote := str.Len()
			str.Append(`"`)
			p.pos++
			p.out.Append(str.String())

			p.parseWhitespaceAndSkipComments(false)

			if stopAtDelimiter || p.pos >= len(p.input) || isDelimiter(p.char(p.pos)) || isQuote(p.char(p.pos)) || isDigit(p.char(p.pos)) {
				processed, err := p.parseConcatenatedString()
				_ = processed
				return true, err
			}

			iPrevChar := p.prevNonWhitespaceIndex(iQuote - 1)
			prevChar := p.char(iPrevChar)

			switch {
			case prevChar == ',':
				p.pos = iBefore
				p.out.Truncate(oBefore)
				return p.parseStringMode(false, iPrevChar)
			case isDelimiter(prevChar):
				p.pos = iBefore
				p.out.Truncate(oBefore)
				return p.parseStringMode(true, -1)
			default:
				p.out.Truncate(oBefore)
				p.pos = iQuote + 1
				str.InsertAt(oQuote, `\`)
			}

		case stopAtDelimiter && isUnquotedStringDelimiter(p.char(p.pos)):
			if p.char(p.pos-1) == ':' && looksLikeHTTPURLStart(string(p.input[min(iBefore+1, len(p.input)):min(p.pos+2, len(p.input))])) {
				for p.pos < len(p.input) && isURLChar(p.char(p.pos)) {
					str.AppendRune(p.char(p.pos))
					p.pos++
				}
			}

			str.InsertBeforeTrailingWhitespace(`"`)
			p.out.Append(str.String())

			_, err := p.parseConcatenatedString()
			return true, err

		case p.char(p.pos) == '\\':
			ch := p.char(p.pos + 1)
			switch {
			case isEscapeLetter(ch):
				str.Append(string(p.input[p.pos : p.pos+2]))
				p.pos += 2
			case ch == 'u':
				j := 2
				for j < 6 && isHex(p.char(p.pos+j)) {
					j++
				}
				switch {
				case j == 6:
					str.Append(string(p.input[p.pos : p.pos+6]))
					p.pos += 6
				case p.pos+j >= len(p.input):
					// truncated \u escape at EOF: drop it and end the string here
					p.pos = len(p.input)
				default:
					return false, newError(ErrInvalidUnicode, invalidUnicodeMessage(p, p.pos), p.pos)
				}
			default:
				// unrecognized escape letter: drop the backslash
				str.AppendRune(ch)
				p.pos += 2
			}

		default:
			ch := p.char(p.pos)
			switch {
			case ch == '"' && p.char(p.pos-1) != '\\':
				str.Append(`\"`)
				p.pos++
			case isControlCharacter(ch):
				str.Append(controlEscape(ch))
				p.pos++
			default:
				if !isValidStringCharacter(ch) {
					return false, newError(ErrInvalidCharacter, `Invalid character "`+string(ch)+`"`, p.pos)
				}
				str.AppendRune(ch)
				p.pos++
			}
		}

		if skipEscapeChars {
			p.skipEscapeCharacter()
		}
	}
}

func invalidUnicodeMessage(p *parser, at int) string {
	end := at + 6
	if end > len(p.input) {
		end = len(p.input)
	}
	return `Invalid unicode character "` + string(p.input[at:end]) + `"`
}

// parseConcatenatedString repairs concatenated string literals like
// "hello" + "world" into "helloworld".
func (p *parser) parseConcatenatedString() (bool, error) {
	processed := false

	p.parseWhitespaceAndSkipComments(true)
	for p.char(p.pos) == '+' {
		processed = true
		p.pos++
		p.parseWhitespaceAndSkipComments(true)

		p.out.StripLastOccurrence(`"`, true)
		start := p.out.Len()
		parsedStr, err := p.parseString()
		if err != nil {
			return processed, err
		}
		if parsedStr {
			p.out.RemoveAt(start, 1)
		} else {
			p.out.InsertBeforeTrailingWhitespace(`"`)
		}
	}

	return processed, nil
}
