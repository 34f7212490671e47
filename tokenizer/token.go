package tokenizer

import "golang.org/x/net/html/atom"

// TokenType identifies which of the six token kinds a Token carries.
type TokenType int

const (
	DataToken TokenType = iota
	CDataToken
	ScriptDataToken
	CommentToken
	DocTypeToken
	TagToken
)

// Namespace is the foreign-content namespace implied by the last <html>
// start tag's xmlns attribute, if any.
type Namespace int

const (
	NamespaceHTML Namespace = iota
	NamespaceMathML
	NamespaceSVG
)

func namespaceFromXMLNS(v string) (Namespace, bool) {
	switch v {
	case "http://www.w3.org/1999/xhtml":
		return NamespaceHTML, true
	case "http://www.w3.org/1998/Math/MathML":
		return NamespaceMathML, true
	case "http://www.w3.org/2000/svg":
		return NamespaceSVG, true
	default:
		return NamespaceHTML, false
	}
}

// Attribute is a single name/value pair on a Tag token. ID is resolved via
// golang.org/x/net/html/atom, an external tag-id/attribute-id lookup
// collaborator.
type Attribute struct {
	Name  string
	ID    atom.Atom
	Value string
}

// DocType carries the fields of a DOCTYPE token.
type DocType struct {
	RawTagName        string
	Name              *string
	PublicKeyword     *string
	SystemKeyword     *string
	PublicIdentifier  *string
	SystemIdentifier  *string
	ForceQuirks       bool
}

// Tag carries the fields of a start or end tag token.
type Tag struct {
	Name            string
	ID              atom.Atom
	IsEndTag        bool
	IsEmptyElement  bool
	Attributes      []Attribute
}

// Token is the sum type emitted by (*Tokenizer).Next. Exactly one of the
// type-specific fields is meaningful, selected by Type.
type Token struct {
	Type TokenType

	// Data / CData / ScriptData / Comment
	Text string

	// Data only: whether the producing state decodes entities (RCDATA and
	// Data do, RAWTEXT, ScriptData and PlainText do not).
	EncodeEntities bool

	DocType DocType
	Tag     Tag
}

// TokenFactory builds Token values. The default factory returns Token
// values directly; a caller that needs enriched token types can supply its
// own factory to Config, giving factory-method-per-kind extensibility
// without virtual dispatch per character.
type TokenFactory interface {
	NewDataToken(text string, encodeEntities bool) Token
	NewCDataToken(text string) Token
	NewScriptDataToken(text string) Token
	NewCommentToken(text string) Token
	NewDocTypeToken(d DocType) Token
	NewTagToken(tag Tag) Token
}

type defaultTokenFactory struct{}

func (defaultTokenFactory) NewDataToken(text string, encodeEntities bool) Token {
	return Token{Type: DataToken, Text: text, EncodeEntities: encodeEntities}
}

func (defaultTokenFactory) NewCDataToken(text string) Token {
	return Token{Type: CDataToken, Text: text}
}

func (defaultTokenFactory) NewScriptDataToken(text string) Token {
	return Token{Type: ScriptDataToken, Text: text}
}

func (defaultTokenFactory) NewCommentToken(text string) Token {
	return Token{Type: CommentToken, Text: text}
}

func (defaultTokenFactory) NewDocTypeToken(d DocType) Token {
	return Token{Type: DocTypeToken, DocType: d}
}

func (defaultTokenFactory) NewTagToken(tag Tag) Token {
	return Token{Type: TagToken, Tag: tag}
}
