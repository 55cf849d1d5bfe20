package repair

// parseWhitespaceAndSkipComments alternates skipping whitespace and
// comments until neither consumes input. skipNewline controls whether a
// bare newline counts as whitespace for this call (it does everywhere
// except the string production's post-close look-ahead).
func (p *parser) parseWhitespaceAndSkipComments(skipNewline bool) bool {
	start := p.pos

	p.parseWhitespace(skipNewline)
	for p.parseComment() {
		p.parseWhitespace(skipNewline)
	}

	return p.pos > start
}

// parseWhitespace consumes a run of ASCII whitespace, normalizing any
// Unicode "special whitespace" look-alike to an ordinary space as it
// goes, and appends what it consumed to the output.
func (p *parser) parseWhitespace(skipNewline bool) bool {
	var ws []rune

	for {
		c := p.char(p.pos)
		switch {
		case skipNewline && isWhitespace(c):
			ws = append(ws, c)
			p.pos++
		case !skipNewline && isWhitespaceExceptNewline(c):
			ws = append(ws, c)
			p.pos++
		case isSpecialWhitespace(c):
			ws = append(ws, ' ')
			p.pos++
		default:
			if len(ws) == 0 {
				return false
			}
			p.out.Append(string(ws))
			return true
		}
	}
}

// parseComment recognizes and silently drops a line ("// ... EOL") or
// block ("/* ... */") comment. Neither the delimiters nor the body are
// ever written to output.
func (p *parser) parseComment() bool {
	if p.char(p.pos) == '/' && p.char(p.pos+1) == '*' {
		for p.pos < len(p.input) && !p.atEndOfBlockComment(p.pos) {
			p.pos++
		}
		p.pos += 2
		return true
	}

	if p.char(p.pos) == '/' && p.char(p.pos+1) == '/' {
		for p.pos < len(p.input) && p.char(p.pos) != '\n' {
			p.pos++
		}
		return true
	}

	return false
}

func (p *parser) atEndOfBlockComment(i int) bool {
	return p.char(i) == '*' && p.char(i+1) == '/'
}
