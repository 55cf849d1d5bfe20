package repair

// parseMarkdownCodeBlock skips one of the given fence markers (opening
// or closing) and an optional language tag right after the fence, then
// drops any comments that follow; whitespace after the fence is copied
// to the output.
func (p *parser) parseMarkdownCodeBlock(blocks []string) bool {
	if !p.skipMarkdownCodeBlock(blocks) {
		return false
	}

	if isFunctionNameCharStart(p.char(p.pos)) {
		for p.pos < len(p.input) && isFunctionNameChar(p.char(p.pos)) {
			p.pos++
		}
	}

	p.parseWhitespaceAndSkipComments(true)
	return true
}

func (p *parser) skipMarkdownCodeBlock(blocks []string) bool {
	for _, block := range blocks {
		end := p.pos + len([]rune(block))
		if end > len(p.input) {
			continue
		}
		if string(p.input[p.pos:end]) == block {
			p.pos = end
			return true
		}
	}
	return false
}
