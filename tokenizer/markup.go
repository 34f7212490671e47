package tokenizer

// tryConsumeLiteral consumes lit rune-by-rune only if the whole literal
// matches the upcoming input. On a partial match the characters already
// consumed (they cannot be put back) are folded into t.name as the start of
// a bogus comment, and false is returned; the mismatching character itself
// is left unconsumed for whatever state runs next.
func (t *Tokenizer) tryConsumeLiteral(lit string) bool {
	matched := 0
	for _, want := range lit {
		r, ok := t.peek()
		if !ok || r != want {
			t.rewindLiteralAttempt(lit, matched)
			return false
		}
		t.consumeRaw()
		matched++
	}
	return true
}

// tryConsumeLiteralFold is tryConsumeLiteral with ASCII case-insensitive
// comparison, for the "DOCTYPE", "PUBLIC" and "SYSTEM" keywords. A partial
// match is folded into t.name as the characters appeared in the input.
func (t *Tokenizer) tryConsumeLiteralFold(lit string) bool {
	var seen []rune
	for _, want := range lit {
		r, ok := t.peek()
		if !ok || toLowerASCII(r) != toLowerASCII(want) {
			for _, s := range seen {
				t.name.WriteRune(s)
			}
			return false
		}
		t.consumeRaw()
		seen = append(seen, r)
	}
	return true
}

// rewindLiteralAttempt folds the first n runes of lit (the portion already
// irreversibly consumed from the source) into the bogus-comment buffer.
func (t *Tokenizer) rewindLiteralAttempt(lit string, n int) {
	i := 0
	for _, r := range lit {
		if i >= n {
			break
		}
		t.name.WriteRune(r)
		i++
	}
}

// stepMarkupDeclarationOpen dispatches a "<!" sequence to a comment, a
// DOCTYPE, a CDATA section (outside the HTML namespace), or, failing all
// of those, a bogus comment.
func (t *Tokenizer) stepMarkupDeclarationOpen() (Token, bool) {
	before := t.name.Len()
	if t.tryConsumeLiteral("--") {
		t.name.Reset()
		t.state = StateCommentStart
		return Token{}, false
	}
	if t.name.Len() == before && t.tryConsumeLiteralFold("DOCTYPE") {
		t.beginDocType()
		t.state = StateDocType
		return Token{}, false
	}
	if t.name.Len() == before && t.namespace != NamespaceHTML && t.tryConsumeLiteral("[CDATA[") {
		t.name.Reset()
		t.state = StateCDataSection
		return Token{}, false
	}
	t.state = StateBogusComment
	return Token{}, false
}

func (t *Tokenizer) emitComment() (Token, bool) {
	text := t.name.String()
	t.name.Reset()
	t.clearData()
	t.state = StateData
	return t.factory.NewCommentToken(text), true
}

// stepCommentStart implements the comment-start state.
func (t *Tokenizer) stepCommentStart() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '-':
		t.consumeRaw()
		t.state = StateCommentStartDash
		return Token{}, false
	case '>':
		// Abrupt closing of an empty comment.
		t.consumeRaw()
		return t.emitComment()
	default:
		t.state = StateComment
		return Token{}, false
	}
}

// stepCommentStartDash implements the comment-start-dash state.
func (t *Tokenizer) stepCommentStartDash() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '-':
		t.consumeRaw()
		t.state = StateCommentEnd
		return Token{}, false
	case '>':
		t.consumeRaw()
		return t.emitComment()
	default:
		t.name.WriteRune('-')
		t.state = StateComment
		return Token{}, false
	}
}

// stepComment collects everything up to the first "-->" (or "--!>", or EOF).
func (t *Tokenizer) stepComment() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '-':
			t.consumeRaw()
			t.state = StateCommentEndDash
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

// stepCommentEndDash implements the comment-end-dash state.
func (t *Tokenizer) stepCommentEndDash() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	if r == '-' {
		t.consumeRaw()
		t.state = StateCommentEnd
		return Token{}, false
	}
	t.name.WriteRune('-')
	t.state = StateComment
	return Token{}, false
}

// stepCommentEnd implements the comment-end state.
func (t *Tokenizer) stepCommentEnd() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flush(DataToken)
		}
		switch r {
		case '>':
			t.consumeRaw()
			return t.emitComment()
		case '!':
			t.consumeRaw()
			t.state = StateCommentEndBang
			return Token{}, false
		case '-':
			t.consumeRaw()
			t.name.WriteRune('-')
		default:
			t.name.WriteString("--")
			t.state = StateComment
			return Token{}, false
		}
	}
}

// stepCommentEndBang implements the comment-end-bang state ("--!" inside
// a comment).
func (t *Tokenizer) stepCommentEndBang() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		return t.flush(DataToken)
	}
	switch r {
	case '-':
		t.consumeRaw()
		t.name.WriteString("--!")
		t.state = StateCommentEndDash
		return Token{}, false
	case '>':
		t.consumeRaw()
		return t.emitComment()
	default:
		t.name.WriteString("--!")
		t.state = StateComment
		return Token{}, false
	}
}

// stepCDataSection copies verbatim until the terminating "]]>", tracked
// with a 3-state sliding window (this state, then CDataSectionBracket
// after one ']', then CDataSectionEnd after two).
func (t *Tokenizer) stepCDataSection() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			return t.flushCData()
		}
		if r == ']' {
			t.consumeRaw()
			t.state = StateCDataSectionBracket
			return Token{}, false
		}
		t.consumeRaw()
		t.name.WriteRune(r)
	}
}

// stepCDataSectionBracket implements the state after one ']'.
func (t *Tokenizer) stepCDataSectionBracket() (Token, bool) {
	r, ok := t.peek()
	if !ok {
		t.name.WriteRune(']')
		return t.flushCData()
	}
	if r == ']' {
		t.consumeRaw()
		t.state = StateCDataSectionEnd
		return Token{}, false
	}
	t.name.WriteRune(']')
	t.state = StateCDataSection
	return Token{}, false
}

// stepCDataSectionEnd implements the state after "]]", where a following
// '>' completes the section and anything else (including a run of further
// ']') falls back to ordinary CDATA content.
func (t *Tokenizer) stepCDataSectionEnd() (Token, bool) {
	for {
		r, ok := t.peek()
		if !ok {
			t.name.WriteString("]]")
			return t.flushCData()
		}
		switch r {
		case '>':
			t.consumeRaw()
			text := t.name.String()
			t.name.Reset()
			t.clearData()
			t.state = StateData
			return t.factory.NewCDataToken(text), true
		case ']':
			t.consumeRaw()
			t.name.WriteRune(']')
		default:
			t.name.WriteString("]]")
			t.state = StateCDataSection
			return Token{}, false
		}
	}
}

// flushCData handles an unterminated CDATA section at EOF: collected
// content, if any, is emitted as a CData token.
func (t *Tokenizer) flushCData() (Token, bool) {
	text := t.name.String()
	t.state = StateEndOfFile
	t.discardPendingTokens()
	if text == "" {
		return Token{}, false
	}
	t.clearData()
	return t.factory.NewCDataToken(text), true
}
