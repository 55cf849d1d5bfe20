package repair

// parseKeywords matches true/false/null verbatim, and repairs the
// Python spellings True/False/None into their lower-case equivalents.
func (p *parser) parseKeywords() bool {
	return p.parseKeyword("true", "true") ||
		p.parseKeyword("false", "false") ||
		p.parseKeyword("null", "null") ||
		p.parseKeyword("True", "true") ||
		p.parseKeyword("False", "false") ||
		p.parseKeyword("None", "null")
}

func (p *parser) parseKeyword(name, value string) bool {
	nameRunes := []rune(name)
	end := p.pos + len(nameRunes)
	if end > len(p.input) {
		return false
	}
	if string(p.input[p.pos:end]) != name {
		return false
	}
	p.out.Append(value)
	p.pos = end
	return true
}
