package tokenizer

import (
	"strings"

	"golang.org/x/net/html/atom"
)

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// beginTag starts a new pending tag token.
func (t *Tokenizer) beginTag(isEnd bool) {
	t.tag = &Tag{IsEndTag: isEnd}
	t.name.Reset()
}

// sealTagName commits the accumulated lexeme as the pending tag's name.
func (t *Tokenizer) sealTagName() {
	t.tag.Name = t.name.String()
	t.name.Reset()
}

// sealAttributeName commits the accumulated lexeme as the pending
// attribute's name, lower-cased per HTML's case-insensitive attribute
// names.
func (t *Tokenizer) sealAttributeName() {
	t.curAttrName = strings.ToLower(t.name.String())
	t.name.Reset()
}

// emitAttribute attaches the pending attribute (name sealed by
// sealAttributeName) with value to the current tag, unless an attribute of
// the same name already appeared earlier on this tag — first occurrence
// wins.
func (t *Tokenizer) emitAttribute(value string) {
	name := t.curAttrName
	t.curAttrName = ""
	if name == "" {
		return
	}
	for _, a := range t.tag.Attributes {
		if a.Name == name {
			return
		}
	}
	t.tag.Attributes = append(t.tag.Attributes, Attribute{
		Name:  name,
		ID:    atom.Lookup([]byte(name)),
		Value: value,
	})
}

// beginBogusComment starts a pending comment in response to a malformed
// markup construct ('<?', '</>' and the like); its raw body accumulates in
// t.name exactly like a well-formed comment.
func (t *Tokenizer) beginBogusComment() {
	t.name.Reset()
}

// stepTagOpen implements the tag open state: '<' has just
// been consumed, and what follows decides whether this is a start tag, an
// end tag, a markup declaration, a bogus comment, or plain data after all.
func (t *Tokenizer) stepTagOpen() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch {
	case r == '!':
		t.consumeRaw()
		t.state = StateMarkupDeclarationOpen
		return Token{}, false
	case r == '/':
		t.consumeRaw()
		t.state = StateEndTagOpen
		return Token{}, false
	case isAsciiLetter(r):
		t.beginTag(false)
		t.state = StateTagName
		return Token{}, false
	case r == '?':
		t.beginBogusComment()
		t.state = StateBogusComment
		return Token{}, false
	default:
		// '<' wasn't the start of a tag after all: emit it as data and
		// reprocess r from Data.
		tok := t.emitAccumulatedText(DataToken)
		t.state = StateData
		return tok, true
	}
}

// stepEndTagOpen implements the end tag open state.
func (t *Tokenizer) stepEndTagOpen() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch {
	case isAsciiLetter(r):
		t.beginTag(true)
		t.state = StateTagName
		return Token{}, false
	case r == '>':
		// Missing end tag name: a parse error, the construct is simply
		// dropped and tokenization resumes in Data.
		t.consumeRaw()
		t.clearData()
		t.state = StateData
		return Token{}, false
	default:
		t.beginBogusComment()
		t.state = StateBogusComment
		return Token{}, false
	}
}

// stepTagName implements the tag name state.
func (t *Tokenizer) stepTagName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
			t.sealTagName()
			t.state = StateBeforeAttributeName
			return Token{}, false
		case r == '/':
			t.consumeRaw()
			t.sealTagName()
			t.state = StateSelfClosingStartTag
			return Token{}, false
		case r == '>':
			t.consumeRaw()
			t.sealTagName()
			return t.emitTag()
		case r == 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(r)
		}
	}
}

// stepBeforeAttributeName implements the before-attribute-name state.
func (t *Tokenizer) stepBeforeAttributeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
		case r == '/':
			t.consumeRaw()
			t.state = StateSelfClosingStartTag
			return Token{}, false
		case r == '>':
			t.consumeRaw()
			return t.emitTag()
		default:
			t.name.Reset()
			t.state = StateAttributeName
			return Token{}, false
		}
	}
}

// stepAttributeName implements the attribute-name state.
func (t *Tokenizer) stepAttributeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		if isWhitespace(r) || r == '/' || r == '>' {
			t.sealAttributeName()
			t.state = StateAfterAttributeName
			return Token{}, false
		}
		if r == '=' {
			t.consumeRaw()
			t.sealAttributeName()
			t.state = StateBeforeAttributeValue
			return Token{}, false
		}
		if r == 0 {
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
			continue
		}
		t.consumeRaw()
		t.name.WriteRune(toLowerASCII(r))
	}
}

// stepAfterAttributeName implements the after-attribute-name state.
func (t *Tokenizer) stepAfterAttributeName() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
		case r == '/':
			t.consumeRaw()
			t.emitAttribute("")
			t.state = StateSelfClosingStartTag
			return Token{}, false
		case r == '=':
			t.consumeRaw()
			t.state = StateBeforeAttributeValue
			return Token{}, false
		case r == '>':
			t.consumeRaw()
			t.emitAttribute("")
			return t.emitTag()
		default:
			t.emitAttribute("")
			t.state = StateBeforeAttributeName
			return Token{}, false
		}
	}
}

// stepBeforeAttributeValue implements the before-attribute-value state.
func (t *Tokenizer) stepBeforeAttributeValue() (Token, bool) {
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
			t.state = StateAttributeValueDoubleQuoted
			return Token{}, false
		case '\'':
			t.consumeRaw()
			t.state = StateAttributeValueSingleQuoted
			return Token{}, false
		case '>':
			t.consumeRaw()
			t.emitAttribute("")
			return t.emitTag()
		default:
			t.state = StateAttributeValueUnquoted
			return Token{}, false
		}
	}
}

// stepAttributeValueQuoted implements the (double- and single-)quoted
// attribute value states.
func (t *Tokenizer) stepAttributeValueQuoted(quote rune) (Token, bool) {
	st := StateAttributeValueDoubleQuoted
	if quote == '\'' {
		st = StateAttributeValueSingleQuoted
	}
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case quote:
			t.consumeRaw()
			t.emitAttribute(t.name.String())
			t.name.Reset()
			t.state = StateAfterAttributeValueQuoted
			return Token{}, false
		case '&':
			t.consumeRaw()
			t.ent.Reset()
			t.ent.Push('&')
			t.charRefReturnState = st
			t.state = StateCharacterReferenceInAttributeValue
			return Token{}, false
		case 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(r)
		}
	}
}

// stepAttributeValueUnquoted implements the unquoted attribute value
// state.
func (t *Tokenizer) stepAttributeValueUnquoted() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch {
		case isWhitespace(r):
			t.consumeRaw()
			t.emitAttribute(t.name.String())
			t.name.Reset()
			t.state = StateBeforeAttributeName
			return Token{}, false
		case r == '&':
			t.consumeRaw()
			t.ent.Reset()
			t.ent.Push('&')
			t.charRefReturnState = StateAttributeValueUnquoted
			t.state = StateCharacterReferenceInAttributeValue
			return Token{}, false
		case r == '>':
			t.consumeRaw()
			t.emitAttribute(t.name.String())
			t.name.Reset()
			return t.emitTag()
		case r == 0:
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
		default:
			t.consumeRaw()
			t.name.WriteRune(r)
		}
	}
}

// stepAfterAttributeValueQuoted implements the after-attribute-value-quoted
// state.
func (t *Tokenizer) stepAfterAttributeValueQuoted() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch {
	case isWhitespace(r):
		t.consumeRaw()
		t.state = StateBeforeAttributeName
		return Token{}, false
	case r == '/':
		t.consumeRaw()
		t.state = StateSelfClosingStartTag
		return Token{}, false
	case r == '>':
		t.consumeRaw()
		return t.emitTag()
	default:
		// Missing whitespace between attributes: reconsume in
		// before-attribute-name without consuming r.
		t.state = StateBeforeAttributeName
		return Token{}, false
	}
}

// stepSelfClosingStartTag implements the self-closing-start-tag state.
func (t *Tokenizer) stepSelfClosingStartTag() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	if r == '>' {
		t.consumeRaw()
		t.tag.IsEmptyElement = true
		return t.emitTag()
	}
	t.state = StateBeforeAttributeName
	return Token{}, false
}

// stepBogusComment collects whatever is here verbatim up to the next '>'
// (or EOF) and emits it as a comment.
func (t *Tokenizer) stepBogusComment() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			t.state = StateEndOfFile
			text := t.name.String()
			t.name.Reset()
			t.clearData()
			return t.factory.NewCommentToken(text), true
		}
		if r == '>' {
			t.consumeRaw()
			text := t.name.String()
			t.name.Reset()
			t.clearData()
			t.state = StateData
			return t.factory.NewCommentToken(text), true
		}
		if r == 0 {
			t.consumeRaw()
			t.name.WriteRune(replacementChar)
			continue
		}
		t.consumeRaw()
		t.name.WriteRune(r)
	}
}
