package tokenizer

import "strings"

// stepCharacterReference implements the character-reference and attribute
// character-reference sub-machine: push source characters
// into the entity decoder until it refuses one, then resolve the match.
//
// Characters are only consumed from the source once the decoder has
// accepted them: this is what makes the terminating ';' consumed iff it
// matched fall out naturally — a successful Push of ';' both completes
// the match and consumes the character, while a rejected ';' is left in
// the stream for whatever state runs next.
func (t *Tokenizer) stepCharacterReference(returnState State, attrMode bool) (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			break
		}
		if !t.ent.Push(r) {
			break
		}
		t.consume()
	}

	pushed := t.ent.GetPushedInput()
	value := t.ent.GetValue()

	// Legacy rule: an unterminated match immediately followed by '=' or an
	// alphanumeric, inside an attribute value, is left raw rather than
	// decoded.
	out := value
	if attrMode && !strings.HasSuffix(pushed, ";") {
		if nr, ok := t.peek(); ok && (nr == '=' || isAsciiAlnum(nr)) {
			out = pushed
		}
	}

	if attrMode {
		t.name.WriteString(out)
	} else {
		t.data.WriteString(out)
	}

	t.ent.Reset()
	t.state = returnState
	return Token{}, false
}
