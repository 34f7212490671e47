package tokenizer

import "strings"

// abandonEndTagMatch gives up on a raw-text end-tag candidate that turned
// out not to be the active tag's end tag (or wasn't an end tag at all). The
// candidate was matched without touching t.data, so the "</" prefix and
// whatever name letters were read have to be folded back in now as literal
// text before the state returns to contentState.
func (t *Tokenizer) abandonEndTagMatch(contentState State) (Token, bool) {
	t.data.WriteString("</")
	t.data.WriteString(t.name.String())
	t.tag = nil
	t.name.Reset()
	t.state = contentState
	return Token{}, false
}

// isAppropriateEndTag reports whether the accumulated name is, case
// insensitively, the tag name that put the tokenizer into raw-text content
// in the first place.
func (t *Tokenizer) isAppropriateEndTag(expected string) bool {
	return strings.ToLower(t.name.String()) == expected
}

// textKindFor reports which text token kind a content state flushes as.
func textKindFor(contentState State) TokenType {
	if contentState == StateScriptData || contentState == StateScriptDataEscaped {
		return ScriptDataToken
	}
	return DataToken
}

// flushPendingTextThen emits whatever text was accumulated in t.data before
// a confirmed end tag started (the tag itself has already been sealed into
// t.tag/t.name by the caller) and advances to nextState. With nothing to
// flush it advances straight there, since emitTag and its neighbors would
// otherwise silently discard the text by clearing t.data.
func (t *Tokenizer) flushPendingTextThen(kind TokenType, nextState State) (Token, bool) {
	if t.data.Len() > 0 {
		tok := t.emitAccumulatedText(kind)
		t.state = nextState
		return tok, true
	}
	t.state = nextState
	return Token{}, false
}

// stepRawTextFamilyLessThan implements the less-than-sign state shared by
// RCDATA, RAWTEXT and script data: only "</" begins a possible end tag,
// everything else is literal. The candidate "</" is held off of t.data until
// the match either fails (the end-tag-open or end-tag-name step writes it
// back) or succeeds
// (flushPendingTextThen flushes whatever text preceded it).
func (t *Tokenizer) stepRawTextFamilyLessThan(contentState, endTagOpenState State) (Token, bool) {
	r, ok := t.peek()
	if ok && r == '/' {
		t.consume()
		t.name.Reset()
		t.state = endTagOpenState
		return Token{}, false
	}
	t.data.WriteRune('<')
	t.state = contentState
	return Token{}, false
}

// stepRawTextFamilyEndTagOpen implements the shared "end-tag-open" state
// following "</": an ASCII letter commits to matching a tag name, anything
// else falls back to literal text.
func (t *Tokenizer) stepRawTextFamilyEndTagOpen(contentState, endTagNameState State) (Token, bool) {
	r, ok := t.peek()
	if ok && isAsciiLetter(r) {
		t.beginTag(true)
		t.state = endTagNameState
		return Token{}, false
	}
	t.data.WriteString("</")
	t.state = contentState
	return Token{}, false
}

// stepRawTextFamilyEndTagName implements the shared "end-tag-name" state:
// it only completes as a real end tag if the accumulated name matches
// expected and is immediately followed by whitespace, '/' or '>'; any other
// outcome abandons the match and rejoins contentState as literal text. A
// confirmed match flushes any text accumulated before it as its own token
// first, so a run like "a<!--b-->" preceding "</script>" stays one token
// instead of splitting at every '<' along the way.
func (t *Tokenizer) stepRawTextFamilyEndTagName(contentState State, expected string) (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.abandonEndTagMatch(contentState)
		}
		switch {
		case isWhitespace(r):
			if !t.isAppropriateEndTag(expected) {
				return t.abandonEndTagMatch(contentState)
			}
			t.consume()
			t.sealTagName()
			return t.flushPendingTextThen(textKindFor(contentState), StateBeforeAttributeName)
		case r == '/':
			if !t.isAppropriateEndTag(expected) {
				return t.abandonEndTagMatch(contentState)
			}
			t.consume()
			t.sealTagName()
			return t.flushPendingTextThen(textKindFor(contentState), StateSelfClosingStartTag)
		case r == '>':
			if !t.isAppropriateEndTag(expected) {
				return t.abandonEndTagMatch(contentState)
			}
			t.consume()
			t.sealTagName()
			return t.flushPendingTextThen(textKindFor(contentState), StateEmitPendingTag)
		case isAsciiLetter(r):
			t.consume()
			t.name.WriteRune(r)
		default:
			return t.abandonEndTagMatch(contentState)
		}
	}
}

// stepScriptDataLessThan implements script data's own less-than-sign
// state: in addition to "</", "<!" begins an escape sequence.
func (t *Tokenizer) stepScriptDataLessThan() (Token, bool) {
	r, ok := t.peek()
	if ok && r == '/' {
		t.consume()
		t.name.Reset()
		t.state = StateScriptDataEndTagOpen
		return Token{}, false
	}
	if ok && r == '!' {
		t.data.WriteRune('<')
		t.consumeRaw()
		t.state = StateScriptDataEscapeStart
		return Token{}, false
	}
	t.data.WriteRune('<')
	t.state = StateScriptData
	return Token{}, false
}

func (t *Tokenizer) stepScriptDataEscapeStart() (Token, bool) {
	r, ok := t.peek()
	if ok && r == '-' {
		t.consumeRaw()
		t.state = StateScriptDataEscapeStartDash
		return Token{}, false
	}
	t.state = StateScriptData
	return Token{}, false
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() (Token, bool) {
	r, ok := t.peek()
	if ok && r == '-' {
		t.consumeRaw()
		t.state = StateScriptDataEscapedDashDash
		return Token{}, false
	}
	t.state = StateScriptData
	return Token{}, false
}

func (t *Tokenizer) stepScriptDataEscaped() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(ScriptDataToken)
		}
		switch r {
		case '-':
			t.consumeRaw()
			t.state = StateScriptDataEscapedDash
			return Token{}, false
		case '<':
			t.consume()
			t.state = StateScriptDataEscapedLessThan
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
		default:
			t.consumeRaw()
		}
	}
}

func (t *Tokenizer) stepScriptDataEscapedDash() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(ScriptDataToken)
	}
	switch r {
	case '-':
		t.consumeRaw()
		t.state = StateScriptDataEscapedDashDash
		return Token{}, false
	case '<':
		t.consume()
		t.state = StateScriptDataEscapedLessThan
		return Token{}, false
	case 0:
		t.consume()
		t.data.WriteRune(replacementChar)
		t.state = StateScriptDataEscaped
		return Token{}, false
	default:
		t.consumeRaw()
		t.state = StateScriptDataEscaped
		return Token{}, false
	}
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(ScriptDataToken)
		}
		switch r {
		case '-':
			t.consumeRaw()
		case '<':
			t.consume()
			t.state = StateScriptDataEscapedLessThan
			return Token{}, false
		case '>':
			t.consumeRaw()
			t.state = StateScriptData
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
			t.state = StateScriptDataEscaped
			return Token{}, false
		default:
			t.consumeRaw()
			t.state = StateScriptDataEscaped
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepScriptDataEscapedLessThan() (Token, bool) {
	r, ok := t.peek()
	if ok && r == '/' {
		t.consume()
		t.name.Reset()
		t.state = StateScriptDataEscapedEndTagOpen
		return Token{}, false
	}
	if ok && isAsciiLetter(r) {
		t.data.WriteRune('<')
		t.name.Reset()
		t.state = StateScriptDataDoubleEscapeStart
		return Token{}, false
	}
	t.data.WriteRune('<')
	t.state = StateScriptDataEscaped
	return Token{}, false
}

// stepScriptDataDoubleEscapeStart matches the literal word "script" to
// enter the double-escaped region; anything else falls back to the
// singly-escaped region.
func (t *Tokenizer) stepScriptDataDoubleEscapeStart() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			t.state = StateScriptDataEscaped
			return Token{}, false
		}
		switch {
		case isWhitespace(r) || r == '/' || r == '>':
			t.consumeRaw()
			if strings.ToLower(t.name.String()) == "script" {
				t.state = StateScriptDataDoubleEscaped
			} else {
				t.state = StateScriptDataEscaped
			}
			return Token{}, false
		case isAsciiLetter(r):
			t.consumeRaw()
			t.name.WriteRune(r)
		default:
			t.state = StateScriptDataEscaped
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(ScriptDataToken)
		}
		switch r {
		case '-':
			t.consumeRaw()
			t.state = StateScriptDataDoubleEscapedDash
			return Token{}, false
		case '<':
			t.consume()
			t.state = StateScriptDataDoubleEscapedLessThan
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
		default:
			t.consumeRaw()
		}
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(ScriptDataToken)
	}
	switch r {
	case '-':
		t.consumeRaw()
		t.state = StateScriptDataDoubleEscapedDashDash
		return Token{}, false
	case '<':
		t.consume()
		t.state = StateScriptDataDoubleEscapedLessThan
		return Token{}, false
	case 0:
		t.consume()
		t.data.WriteRune(replacementChar)
		t.state = StateScriptDataDoubleEscaped
		return Token{}, false
	default:
		t.consumeRaw()
		t.state = StateScriptDataDoubleEscaped
		return Token{}, false
	}
}

// stepScriptDataDoubleEscapedDashDash implements the trailing-dashes state
// of the double-escaped region: it stays in this same state on a repeated
// '-' and leaves it on any other character.
func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(ScriptDataToken)
		}
		switch r {
		case '-':
			t.consumeRaw()
		case '<':
			t.consume()
			t.state = StateScriptDataDoubleEscapedLessThan
			return Token{}, false
		case '>':
			t.consumeRaw()
			t.state = StateScriptData
			return Token{}, false
		case 0:
			t.consume()
			t.data.WriteRune(replacementChar)
			t.state = StateScriptDataDoubleEscaped
			return Token{}, false
		default:
			t.consumeRaw()
			t.state = StateScriptDataDoubleEscaped
			return Token{}, false
		}
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThan() (Token, bool) {
	r, ok := t.peek()
	if ok && r == '/' {
		t.data.WriteRune('<')
		t.consumeRaw()
		t.name.Reset()
		t.state = StateScriptDataDoubleEscapeEnd
		return Token{}, false
	}
	t.data.WriteRune('<')
	t.state = StateScriptDataDoubleEscaped
	return Token{}, false
}

// stepScriptDataDoubleEscapeEnd mirrors stepScriptDataDoubleEscapeStart in
// reverse: matching "script" here exits back to the singly-escaped region.
func (t *Tokenizer) stepScriptDataDoubleEscapeEnd() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			t.state = StateScriptDataDoubleEscaped
			return Token{}, false
		}
		switch {
		case isWhitespace(r) || r == '/' || r == '>':
			t.consumeRaw()
			if strings.ToLower(t.name.String()) == "script" {
				t.state = StateScriptDataEscaped
			} else {
				t.state = StateScriptDataDoubleEscaped
			}
			return Token{}, false
		case isAsciiLetter(r):
			t.consumeRaw()
			t.name.WriteRune(r)
		default:
			t.state = StateScriptDataDoubleEscaped
			return Token{}, false
		}
	}
}
