package tokenizer

// beginDocType starts a new pending DOCTYPE token.
func (t *Tokenizer) beginDocType() {
	t.doc = &DocType{}
	t.name.Reset()
}

// emitDocType finalizes and returns the pending DOCTYPE token.
func (t *Tokenizer) emitDocType() (Token, bool) {
	d := *t.doc
	d.RawTagName = "DOCTYPE"
	t.doc = nil
	t.name.Reset()
	t.clearData()
	t.state = StateData
	return t.factory.NewDocTypeToken(d), true
}

func (t *Tokenizer) sealDocTypeName() {
	s := t.name.String()
	t.doc.Name = &s
	t.name.Reset()
}

// stepDocType handles the single character (always whitespace in
// well-formed input) between "DOCTYPE" and the name.
func (t *Tokenizer) stepDocType() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	if isWhitespace(r) {
		t.consumeRaw()
		t.state = StateBeforeDocTypeName
		return Token{}, false
	}
	t.state = StateBeforeDocTypeName
	return Token{}, false
}

// stepBeforeDocTypeName implements the before-doctype-name state.
func (t *Tokenizer) stepBeforeDocTypeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
		case r == '>':
			t.consumeRaw()
			t.doc.ForceQuirks = true
			return t.emitDocType()
		case r == 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
			t.state = StateDocTypeName
			return Token{}, false
		default:
			t.consumeRaw()
			t.name.WriteRune(toLowerASCII(r))
			t.state = StateDocTypeName
			return Token{}, false
		}
	}
}

// stepDocTypeName implements the doctype-name state.
func (t *Tokenizer) stepDocTypeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
			t.sealDocTypeName()
			t.state = StateAfterDocTypeName
			return Token{}, false
		case r == '>':
			t.consumeRaw()
			t.sealDocTypeName()
			return t.emitDocType()
		case r == 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(toLowerASCII(r))
		}
	}
}

// stepAfterDocTypeName implements the after-doctype-name state: only the
// PUBLIC and SYSTEM keywords (case-insensitively) lead anywhere but a bogus
// doctype.
func (t *Tokenizer) stepAfterDocTypeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		if isWhitespace(r) {
			t.consumeRaw()
			continue
		}
		if r == '>' {
			t.consumeRaw()
			return t.emitDocType()
		}
		if r == 'p' || r == 'P' {
			if t.tryConsumeLiteralFold("PUBLIC") {
				kw := "PUBLIC"
				t.doc.PublicKeyword = &kw
				t.name.Reset()
				t.state = StateAfterDocTypePublicKeyword
				return Token{}, false
			}
		} else if r == 's' || r == 'S' {
			if t.tryConsumeLiteralFold("SYSTEM") {
				kw := "SYSTEM"
				t.doc.SystemKeyword = &kw
				t.name.Reset()
				t.state = StateAfterDocTypeSystemKeyword
				return Token{}, false
			}
		}
		t.name.Reset()
		t.doc.ForceQuirks = true
		t.state = StateBogusDocType
		return Token{}, false
	}
}

// stepAfterDocTypePublicKeyword implements the after-doctype-public-keyword
// state.
func (t *Tokenizer) stepAfterDocTypePublicKeyword() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		t.consumeRaw()
		t.state = StateBeforeDocTypePublicIdentifier
		return Token{}, false
	case '"':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypePublicIdentifierDoubleQuoted
		return Token{}, false
	case '\'':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypePublicIdentifierSingleQuoted
		return Token{}, false
	case '>':
		t.consumeRaw()
		t.doc.ForceQuirks = true
		return t.emitDocType()
	default:
		t.doc.ForceQuirks = true
		t.state = StateBogusDocType
		return Token{}, false
	}
}

// stepBeforeDocTypePublicIdentifier implements the
// before-doctype-public-identifier state.
func (t *Tokenizer) stepBeforeDocTypePublicIdentifier() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			t.consumeRaw()
		case '"':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypePublicIdentifierDoubleQuoted
			return Token{}, false
		case '\'':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypePublicIdentifierSingleQuoted
			return Token{}, false
		case '>':
			t.consumeRaw()
			t.doc.ForceQuirks = true
			return t.emitDocType()
		default:
			t.doc.ForceQuirks = true
			t.state = StateBogusDocType
			return Token{}, false
		}
	}
}

// stepDocTypePublicIdentifierQuoted implements the doctype public
// identifier (double- and single-)quoted states.
func (t *Tokenizer) stepDocTypePublicIdentifierQuoted(quote rune) (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case quote:
			t.consumeRaw()
			s := t.name.String()
			t.doc.PublicIdentifier = &s
			t.name.Reset()
			t.state = StateAfterDocTypePublicIdentifier
			return Token{}, false
		case '>':
			t.consumeRaw()
			s := t.name.String()
			t.doc.PublicIdentifier = &s
			t.name.Reset()
			t.doc.ForceQuirks = true
			return t.emitDocType()
		case 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(r)
		}
	}
}

// stepAfterDocTypePublicIdentifier implements the
// after-doctype-public-identifier state.
func (t *Tokenizer) stepAfterDocTypePublicIdentifier() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		t.consumeRaw()
		t.state = StateBetweenDocTypePublicAndSystemIdentifiers
		return Token{}, false
	case '>':
		t.consumeRaw()
		return t.emitDocType()
	case '"':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypeSystemIdentifierDoubleQuoted
		return Token{}, false
	case '\'':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypeSystemIdentifierSingleQuoted
		return Token{}, false
	default:
		t.doc.ForceQuirks = true
		t.state = StateBogusDocType
		return Token{}, false
	}
}

// stepBetweenDocTypePublicAndSystemIdentifiers implements the
// between-doctype-public-and-system-identifiers state.
func (t *Tokenizer) stepBetweenDocTypePublicAndSystemIdentifiers() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			t.consumeRaw()
		case '>':
			t.consumeRaw()
			return t.emitDocType()
		case '"':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypeSystemIdentifierDoubleQuoted
			return Token{}, false
		case '\'':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypeSystemIdentifierSingleQuoted
			return Token{}, false
		default:
			t.doc.ForceQuirks = true
			t.state = StateBogusDocType
			return Token{}, false
		}
	}
}

// stepAfterDocTypeSystemKeyword implements the after-doctype-system-keyword
// state.
func (t *Tokenizer) stepAfterDocTypeSystemKeyword() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		t.consumeRaw()
		t.state = StateBeforeDocTypeSystemIdentifier
		return Token{}, false
	case '"':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypeSystemIdentifierDoubleQuoted
		return Token{}, false
	case '\'':
		t.consumeRaw()
		t.name.Reset()
		t.state = StateDocTypeSystemIdentifierSingleQuoted
		return Token{}, false
	case '>':
		t.consumeRaw()
		t.doc.ForceQuirks = true
		return t.emitDocType()
	default:
		t.doc.ForceQuirks = true
		t.state = StateBogusDocType
		return Token{}, false
	}
}

// stepBeforeDocTypeSystemIdentifier implements the
// before-doctype-system-identifier state.
func (t *Tokenizer) stepBeforeDocTypeSystemIdentifier() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			t.consumeRaw()
		case '"':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypeSystemIdentifierDoubleQuoted
			return Token{}, false
		case '\'':
			t.consumeRaw()
			t.name.Reset()
			t.state = StateDocTypeSystemIdentifierSingleQuoted
			return Token{}, false
		case '>':
			t.consumeRaw()
			t.doc.ForceQuirks = true
			return t.emitDocType()
		default:
			t.doc.ForceQuirks = true
			t.state = StateBogusDocType
			return Token{}, false
		}
	}
}

// stepDocTypeSystemIdentifierQuoted implements the doctype system
// identifier (double- and single-)quoted states.
func (t *Tokenizer) stepDocTypeSystemIdentifierQuoted(quote rune) (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case quote:
			t.consumeRaw()
			s := t.name.String()
			t.doc.SystemIdentifier = &s
			t.name.Reset()
			t.state = StateAfterDocTypeSystemIdentifier
			return Token{}, false
		case '>':
			t.consumeRaw()
			s := t.name.String()
			t.doc.SystemIdentifier = &s
			t.name.Reset()
			t.doc.ForceQuirks = true
			return t.emitDocType()
		case 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(r)
		}
	}
}

// stepAfterDocTypeSystemIdentifier implements the
// after-doctype-system-identifier state. Trailing garbage here is a parse
// error but does not force quirks mode, unlike every other dead end in this
// sub-machine.
func (t *Tokenizer) stepAfterDocTypeSystemIdentifier() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			t.consumeRaw()
		case '>':
			t.consumeRaw()
			return t.emitDocType()
		default:
			t.state = StateBogusDocType
			return Token{}, false
		}
	}
}

// stepBogusDocType implements the bogus-doctype state: discard everything
// up to '>' without altering the already-built token.
func (t *Tokenizer) stepBogusDocType() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		if r == '>' {
			t.consumeRaw()
			return t.emitDocType()
		}
		t.consumeRaw()
	}
}
