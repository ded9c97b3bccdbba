package simdjson

// Parse runs Stage 1 and Stage 2 over b and returns a freshly allocated
// ParsedDocument. Use Build to reuse a ParsedDocument across calls
// instead of allocating one per call.
func Parse(b []byte, opts ...ParserOption) (*ParsedDocument, error) {
	pj := NewParsedDocument(len(b), opts...)
	if err := pj.parse(b); err != nil {
		return nil, err
	}
	return pj, nil
}

// Build parses b into pj, reusing pj's backing arrays (reset first),
// avoiding a fresh allocation on every document of a hot loop.
func Build(b []byte, pj *ParsedDocument) error {
	return pj.parse(b)
}

func (pj *ParsedDocument) parse(b []byte) error {
	pj.reset()

	if len(b) == 0 {
		pj.status = EMPTY
		return newParseError(EMPTY, 0, 0, "")
	}

	padded := padInput(b)
	indices, status := findStructuralIndices(padded, len(b))
	if status != SUCCESS {
		pj.status = status
		return newParseError(status, 0, 0, "stage 1")
	}

	status = buildTape(padded, indices, pj)
	pj.status = status
	if status != SUCCESS {
		return newParseError(status, 0, len(pj.scope), "stage 2")
	}

	pj.valid = true
	return nil
}
