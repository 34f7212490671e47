package tokenizer

// emitAccumulatedText flushes t.data as a text token of the given kind and
// clears the buffer without touching t.state. kind is either DataToken
// (Data/RCData/RawText/PlainText) or ScriptDataToken.
func (t *Tokenizer) emitAccumulatedText(kind TokenType) Token {
	text := t.data.String()
	t.clearData()
	if kind == ScriptDataToken {
		return t.factory.NewScriptDataToken(text)
	}
	return t.factory.NewDataToken(text, t.contentEncodesEntities)
}

// stepData implements the Data state: plain text, with
// '&' starting a character reference and '<' starting markup.
func (t *Tokenizer) stepData() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '&':
			if !t.decodeCharRefs {
				t.consume()
				t.data.WriteRune(r)
				continue
			}
			t.consume()
			t.ent.Reset()
			t.ent.Push('&')
			t.charRefReturnState = StateData
			t.state = StateCharacterReferenceInData
			return Token{}, false
		case '<':
			if t.data.Len() > 0 {
				return t.emitAccumulatedText(DataToken), true
			}
			t.consume()
			t.data.WriteRune(r)
			t.state = StateTagOpen
			return Token{}, false
		default:
			t.consume()
			t.data.WriteRune(r)
		}
	}
}

// stepRCData implements the RCDATA state: like Data, but '<' only begins
// markup for matching the active tag's end tag.
func (t *Tokenizer) stepRCData() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '&':
			if !t.decodeCharRefs {
				t.consume()
				t.data.WriteRune(r)
				continue
			}
			t.consume()
			t.ent.Reset()
			t.ent.Push('&')
			t.charRefReturnState = StateRCData
			t.state = StateCharacterReferenceInRCData
			return Token{}, false
		case '<':
			t.consume()
			t.state = StateRCDataLessThan
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
		default:
			t.consume()
			t.data.WriteRune(r)
		}
	}
}

// stepRawText implements the RAWTEXT state: like RCDATA but without entity
// decoding.
func (t *Tokenizer) stepRawText() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '<':
			t.consume()
			t.state = StateRawTextLessThan
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
		default:
			t.consume()
			t.data.WriteRune(r)
		}
	}
}

// stepScriptData implements the script data state: no entity
// decoding, and '<' may begin either an end tag or an escape sequence.
func (t *Tokenizer) stepScriptData() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(ScriptDataToken)
		}
		switch r {
		case '<':
			t.consume()
			t.state = StateScriptDataLessThan
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
		default:
			t.consume()
			t.data.WriteRune(r)
		}
	}
}

// stepPlainText implements the PLAINTEXT state: everything from here to EOF
// is text, with no further markup recognized.
func (t *Tokenizer) stepPlainText() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		if r == 0 {
			t.consume()
			t.data.WriteRune(replacementChar)
			continue
		}
		t.consume()
		t.data.WriteRune(r)
	}
}
