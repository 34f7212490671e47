// Package tokenizer implements the WHATWG HTML tokenization stage: a
// deterministic finite state machine, driven one character at a time, that
// turns a character stream into a lazy sequence of HTML tokens (DOCTYPE,
// start tag, end tag, comment, character data, CDATA section, script data).
//
// Tree construction, DOM building, encoding sniffing and script execution
// are out of scope — this package only tokenizes.
package tokenizer

import (
	"strings"

	"github.com/hoplang/httok/internal/entity"
	"golang.org/x/net/html/atom"
)

const replacementChar = '�'

// Config configures a Tokenizer. DefaultConfig returns the default
// configuration, in which character references are decoded in Data and
// RCDATA content; the zero value leaves them undecoded.
type Config struct {
	// DecodeCharacterReferences controls whether '&'-entities in Data and
	// RCDATA content are resolved. Attribute-value character references
	// are always decoded regardless of this setting. DefaultConfig sets it
	// to true.
	DecodeCharacterReferences bool

	// Factory builds emitted Token values. Defaults to a factory that
	// returns Token values unmodified.
	Factory TokenFactory
}

// DefaultConfig returns the default Config (entity decoding on).
func DefaultConfig() Config {
	return Config{DecodeCharacterReferences: true}
}

// Tokenizer is the tokenization engine. The zero value is not usable; build
// one with New.
type Tokenizer struct {
	src   CharSource
	state State

	data strings.Builder // raw replay buffer, cleared on every emit
	name strings.Builder // current lexeme: tag/attribute name, value, etc.

	tag         *Tag
	curAttrName string

	doc *DocType

	rawTagName string // active raw-text tag name
	quote      rune   // 0, '\'', or '"'

	contentEncodesEntities bool // Data/RCData = true, RawText/PlainText = false

	decodeCharRefs bool
	namespace      Namespace

	line, col int

	charRefReturnState State
	ent                entity.Decoder

	factory TokenFactory
}

// New builds a Tokenizer reading from src with the given configuration.
func New(src CharSource, cfg Config) *Tokenizer {
	factory := cfg.Factory
	if factory == nil {
		factory = defaultTokenFactory{}
	}
	return &Tokenizer{
		src:                    src,
		state:                  StateData,
		decodeCharRefs:         cfg.DecodeCharacterReferences,
		contentEncodesEntities: true,
		namespace:              NamespaceHTML,
		line:                   1,
		col:                    1,
		factory:                factory,
	}
}

// State returns the tokenizer's current state.
func (t *Tokenizer) State() State { return t.state }

// Namespace returns the namespace implied by the last <html> start tag's
// xmlns attribute, or NamespaceHTML if none was seen.
func (t *Tokenizer) Namespace() Namespace { return t.namespace }

// Line returns the 1-based line number just past the last character the
// tokenizer has consumed.
func (t *Tokenizer) Line() int { return t.line }

// Column returns the 1-based column just past the last character the
// tokenizer has consumed.
func (t *Tokenizer) Column() int { return t.col }

// peek returns the next input character without consuming it.
func (t *Tokenizer) peek() (rune, bool) {
	return t.src.Peek()
}

// consume reads and returns the next input character, advancing line/column.
func (t *Tokenizer) consume() (rune, bool) {
	r, ok := t.src.Read()
	if !ok {
		return 0, false
	}
	if r == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return r, true
}

// consumeRaw consumes the next input character and mirrors it into the raw
// replay buffer, for markup states where data must hold exactly what has
// been consumed since the last emit.
func (t *Tokenizer) consumeRaw() (rune, bool) {
	r, ok := t.consume()
	if ok {
		t.data.WriteRune(r)
	}
	return r, ok
}

// clearData resets the raw replay buffer; called as a side effect of every
// emit.
func (t *Tokenizer) clearData() {
	t.data.Reset()
}

// discardPendingTokens drops any live tag/attribute/doctype slot, used when
// a parse error unwinds back to Data without emitting them.
func (t *Tokenizer) discardPendingTokens() {
	t.tag = nil
	t.curAttrName = ""
	t.doc = nil
	t.name.Reset()
}

// flush emits the data buffer as a token of the given kind (Data or
// ScriptData) if non-empty, discards any pending tag/attribute/doctype, and
// transitions to EndOfFile. An unexpected EOF inside a multi-character
// construct re-emits the raw bytes already consumed instead of losing them.
func (t *Tokenizer) flush(kind TokenType) (Token, bool) {
	t.state = StateEndOfFile
	t.discardPendingTokens()
	if t.data.Len() == 0 {
		return Token{}, false
	}
	text := t.data.String()
	t.clearData()
	switch kind {
	case ScriptDataToken:
		return t.factory.NewScriptDataToken(text), true
	default:
		return t.factory.NewDataToken(text, t.contentEncodesEntities), true
	}
}

// Next reads and returns the next token, or (_, false) once the underlying
// input and any pending state have been fully drained. EndOfFile is
// absorbing: once reached, every subsequent call returns (_, false).
func (t *Tokenizer) Next() (Token, bool) {
	for {
		switch t.state {
		case StateData:
			if tok, ok := t.stepData(); ok {
				return tok, true
			}
		case StateRCData:
			if tok, ok := t.stepRCData(); ok {
				return tok, true
			}
		case StateRawText:
			if tok, ok := t.stepRawText(); ok {
				return tok, true
			}
		case StateScriptData:
			if tok, ok := t.stepScriptData(); ok {
				return tok, true
			}
		case StatePlainText:
			if tok, ok := t.stepPlainText(); ok {
				return tok, true
			}

		case StateTagOpen:
			if tok, ok := t.stepTagOpen(); ok {
				return tok, true
			}
		case StateEndTagOpen:
			if tok, ok := t.stepEndTagOpen(); ok {
				return tok, true
			}
		case StateTagName:
			if tok, ok := t.stepTagName(); ok {
				return tok, true
			}
		case StateBogusComment:
			if tok, ok := t.stepBogusComment(); ok {
				return tok, true
			}

		case StateBeforeAttributeName:
			if tok, ok := t.stepBeforeAttributeName(); ok {
				return tok, true
			}
		case StateAttributeName:
			if tok, ok := t.stepAttributeName(); ok {
				return tok, true
			}
		case StateAfterAttributeName:
			if tok, ok := t.stepAfterAttributeName(); ok {
				return tok, true
			}
		case StateBeforeAttributeValue:
			if tok, ok := t.stepBeforeAttributeValue(); ok {
				return tok, true
			}
		case StateAttributeValueDoubleQuoted:
			if tok, ok := t.stepAttributeValueQuoted('"'); ok {
				return tok, true
			}
		case StateAttributeValueSingleQuoted:
			if tok, ok := t.stepAttributeValueQuoted('\''); ok {
				return tok, true
			}
		case StateAttributeValueUnquoted:
			if tok, ok := t.stepAttributeValueUnquoted(); ok {
				return tok, true
			}
		case StateAfterAttributeValueQuoted:
			if tok, ok := t.stepAfterAttributeValueQuoted(); ok {
				return tok, true
			}
		case StateSelfClosingStartTag:
			if tok, ok := t.stepSelfClosingStartTag(); ok {
				return tok, true
			}

		case StateMarkupDeclarationOpen:
			if tok, ok := t.stepMarkupDeclarationOpen(); ok {
				return tok, true
			}
		case StateCommentStart:
			if tok, ok := t.stepCommentStart(); ok {
				return tok, true
			}
		case StateCommentStartDash:
			if tok, ok := t.stepCommentStartDash(); ok {
				return tok, true
			}
		case StateComment:
			if tok, ok := t.stepComment(); ok {
				return tok, true
			}
		case StateCommentEndDash:
			if tok, ok := t.stepCommentEndDash(); ok {
				return tok, true
			}
		case StateCommentEnd:
			if tok, ok := t.stepCommentEnd(); ok {
				return tok, true
			}
		case StateCommentEndBang:
			if tok, ok := t.stepCommentEndBang(); ok {
				return tok, true
			}

		case StateDocType:
			if tok, ok := t.stepDocType(); ok {
				return tok, true
			}
		case StateBeforeDocTypeName:
			if tok, ok := t.stepBeforeDocTypeName(); ok {
				return tok, true
			}
		case StateDocTypeName:
			if tok, ok := t.stepDocTypeName(); ok {
				return tok, true
			}
		case StateAfterDocTypeName:
			if tok, ok := t.stepAfterDocTypeName(); ok {
				return tok, true
			}
		case StateAfterDocTypePublicKeyword:
			if tok, ok := t.stepAfterDocTypePublicKeyword(); ok {
				return tok, true
			}
		case StateBeforeDocTypePublicIdentifier:
			if tok, ok := t.stepBeforeDocTypePublicIdentifier(); ok {
				return tok, true
			}
		case StateDocTypePublicIdentifierDoubleQuoted:
			if tok, ok := t.stepDocTypePublicIdentifierQuoted('"'); ok {
				return tok, true
			}
		case StateDocTypePublicIdentifierSingleQuoted:
			if tok, ok := t.stepDocTypePublicIdentifierQuoted('\''); ok {
				return tok, true
			}
		case StateAfterDocTypePublicIdentifier:
			if tok, ok := t.stepAfterDocTypePublicIdentifier(); ok {
				return tok, true
			}
		case StateBetweenDocTypePublicAndSystemIdentifiers:
			if tok, ok := t.stepBetweenDocTypePublicAndSystemIdentifiers(); ok {
				return tok, true
			}
		case StateAfterDocTypeSystemKeyword:
			if tok, ok := t.stepAfterDocTypeSystemKeyword(); ok {
				return tok, true
			}
		case StateBeforeDocTypeSystemIdentifier:
			if tok, ok := t.stepBeforeDocTypeSystemIdentifier(); ok {
				return tok, true
			}
		case StateDocTypeSystemIdentifierDoubleQuoted:
			if tok, ok := t.stepDocTypeSystemIdentifierQuoted('"'); ok {
				return tok, true
			}
		case StateDocTypeSystemIdentifierSingleQuoted:
			if tok, ok := t.stepDocTypeSystemIdentifierQuoted('\''); ok {
				return tok, true
			}
		case StateAfterDocTypeSystemIdentifier:
			if tok, ok := t.stepAfterDocTypeSystemIdentifier(); ok {
				return tok, true
			}
		case StateBogusDocType:
			if tok, ok := t.stepBogusDocType(); ok {
				return tok, true
			}

		case StateCDataSection:
			if tok, ok := t.stepCDataSection(); ok {
				return tok, true
			}
		case StateCDataSectionBracket:
			if tok, ok := t.stepCDataSectionBracket(); ok {
				return tok, true
			}
		case StateCDataSectionEnd:
			if tok, ok := t.stepCDataSectionEnd(); ok {
				return tok, true
			}

		case StateCharacterReferenceInData:
			if tok, ok := t.stepCharacterReference(StateData, false); ok {
				return tok, true
			}
		case StateCharacterReferenceInRCData:
			if tok, ok := t.stepCharacterReference(StateRCData, false); ok {
				return tok, true
			}
		case StateCharacterReferenceInAttributeValue:
			if tok, ok := t.stepCharacterReference(t.charRefReturnState, true); ok {
				return tok, true
			}

		case StateRCDataLessThan:
			if tok, ok := t.stepRawTextFamilyLessThan(StateRCData, StateRCDataEndTagOpen); ok {
				return tok, true
			}
		case StateRCDataEndTagOpen:
			if tok, ok := t.stepRawTextFamilyEndTagOpen(StateRCData, StateRCDataEndTagName); ok {
				return tok, true
			}
		case StateRCDataEndTagName:
			if tok, ok := t.stepRawTextFamilyEndTagName(StateRCData, t.rawTagName); ok {
				return tok, true
			}

		case StateRawTextLessThan:
			if tok, ok := t.stepRawTextFamilyLessThan(StateRawText, StateRawTextEndTagOpen); ok {
				return tok, true
			}
		case StateRawTextEndTagOpen:
			if tok, ok := t.stepRawTextFamilyEndTagOpen(StateRawText, StateRawTextEndTagName); ok {
				return tok, true
			}
		case StateRawTextEndTagName:
			if tok, ok := t.stepRawTextFamilyEndTagName(StateRawText, t.rawTagName); ok {
				return tok, true
			}

		case StateScriptDataLessThan:
			if tok, ok := t.stepScriptDataLessThan(); ok {
				return tok, true
			}
		case StateScriptDataEndTagOpen:
			if tok, ok := t.stepRawTextFamilyEndTagOpen(StateScriptData, StateScriptDataEndTagName); ok {
				return tok, true
			}
		case StateScriptDataEndTagName:
			if tok, ok := t.stepRawTextFamilyEndTagName(StateScriptData, "script"); ok {
				return tok, true
			}

		case StateScriptDataEscapeStart:
			if tok, ok := t.stepScriptDataEscapeStart(); ok {
				return tok, true
			}
		case StateScriptDataEscapeStartDash:
			if tok, ok := t.stepScriptDataEscapeStartDash(); ok {
				return tok, true
			}
		case StateScriptDataEscaped:
			if tok, ok := t.stepScriptDataEscaped(); ok {
				return tok, true
			}
		case StateScriptDataEscapedDash:
			if tok, ok := t.stepScriptDataEscapedDash(); ok {
				return tok, true
			}
		case StateScriptDataEscapedDashDash:
			if tok, ok := t.stepScriptDataEscapedDashDash(); ok {
				return tok, true
			}
		case StateScriptDataEscapedLessThan:
			if tok, ok := t.stepScriptDataEscapedLessThan(); ok {
				return tok, true
			}
		case StateScriptDataEscapedEndTagOpen:
			if tok, ok := t.stepRawTextFamilyEndTagOpen(StateScriptDataEscaped, StateScriptDataEscapedEndTagName); ok {
				return tok, true
			}
		case StateScriptDataEscapedEndTagName:
			if tok, ok := t.stepRawTextFamilyEndTagName(StateScriptDataEscaped, "script"); ok {
				return tok, true
			}

		case StateScriptDataDoubleEscapeStart:
			if tok, ok := t.stepScriptDataDoubleEscapeStart(); ok {
				return tok, true
			}
		case StateScriptDataDoubleEscaped:
			if tok, ok := t.stepScriptDataDoubleEscaped(); ok {
				return tok, true
			}
		case StateScriptDataDoubleEscapedDash:
			if tok, ok := t.stepScriptDataDoubleEscapedDash(); ok {
				return tok, true
			}
		case StateScriptDataDoubleEscapedDashDash:
			if tok, ok := t.stepScriptDataDoubleEscapedDashDash(); ok {
				return tok, true
			}
		case StateScriptDataDoubleEscapedLessThan:
			if tok, ok := t.stepScriptDataDoubleEscapedLessThan(); ok {
				return tok, true
			}
		case StateScriptDataDoubleEscapeEnd:
			if tok, ok := t.stepScriptDataDoubleEscapeEnd(); ok {
				return tok, true
			}

		case StateEmitPendingTag:
			if tok, ok := t.emitTag(); ok {
				return tok, true
			}

		case StateEndOfFile:
			return Token{}, false

		default:
			return Token{}, false
		}
	}
}

// emitTag finalizes and returns the pending tag token, then performs the
// tag-dispatched content-model transition.
func (t *Tokenizer) emitTag() (Token, bool) {
	tag := *t.tag
	tag.Name = strings.ToLower(tag.Name)
	tag.ID = atom.Lookup([]byte(tag.Name))
	t.tag = nil
	t.clearData()

	tok := t.factory.NewTagToken(tag)
	t.applyContentModel(tag)
	return tok, true
}

// applyContentModel chooses the post-emit state by tag id for start tags;
// end tags and self-closing tags always return to Data.
func (t *Tokenizer) applyContentModel(tag Tag) {
	if tag.IsEndTag || tag.IsEmptyElement {
		t.state = StateData
		t.contentEncodesEntities = true
		return
	}
	switch tag.Name {
	case "style", "xmp", "iframe", "noembed", "noframes", "noscript":
		t.rawTagName = tag.Name
		t.state = StateRawText
		t.contentEncodesEntities = false
	case "title", "textarea":
		t.rawTagName = tag.Name
		t.state = StateRCData
		t.contentEncodesEntities = true
	case "plaintext":
		t.state = StatePlainText
		t.contentEncodesEntities = false
	case "script":
		t.rawTagName = tag.Name
		t.state = StateScriptData
	case "html":
		t.state = StateData
		t.contentEncodesEntities = true
		for _, a := range tag.Attributes {
			if a.Name == "xmlns" {
				if ns, ok := namespaceFromXMLNS(a.Value); ok {
					t.namespace = ns
				}
			}
		}
	default:
		t.state = StateData
		t.contentEncodesEntities = true
	}
}

func isAsciiAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isAsciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
