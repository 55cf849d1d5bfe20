package repair

// parseNewlineDelimitedJSON repairs a stream of newline-delimited JSON
// values into a single JSON array, inserting separating commas as
// needed and wrapping the whole accumulated output in "[\n" ... "\n]".
func (p *parser) parseNewlineDelimitedJSON() error {
	initial := true
	processedValue := true

	for processedValue {
		if !initial {
			if !p.parseCharacter(',') {
				p.out.InsertBeforeTrailingWhitespace(",")
			}
		} else {
			initial = false
		}

		var err error
		processedValue, err = p.parseValue()
		if err != nil {
			return err
		}
	}

	if !processedValue {
		p.out.StripLastOccurrence(",", false)
	}

	wrapped := "[\n" + p.out.String() + "\n]"
	p.out = newBuffer()
	p.out.Append(wrapped)
	return nil
}
