package tokenizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// collectAll drains a Tokenizer into a slice, stopping at EndOfFile.
func collectAll(t *testing.T, tok *Tokenizer) []Token {
	t.Helper()
	var out []Token
	for {
		tt, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, tt)
	}
	return out
}

func describeToken(tok Token) string {
	var b strings.Builder
	switch tok.Type {
	case DataToken:
		b.WriteString("Data ")
		b.WriteString(strings.ReplaceAll(tok.Text, "\n", "\\n"))
	case CDataToken:
		b.WriteString("CData ")
		b.WriteString(strings.ReplaceAll(tok.Text, "\n", "\\n"))
	case ScriptDataToken:
		b.WriteString("ScriptData ")
		b.WriteString(strings.ReplaceAll(tok.Text, "\n", "\\n"))
	case CommentToken:
		b.WriteString("Comment ")
		b.WriteString(strings.ReplaceAll(tok.Text, "\n", "\\n"))
	case DocTypeToken:
		b.WriteString("DocType")
		if tok.DocType.Name != nil {
			b.WriteString(" name=" + *tok.DocType.Name)
		}
		if tok.DocType.PublicIdentifier != nil {
			b.WriteString(" public=" + *tok.DocType.PublicIdentifier)
		}
		if tok.DocType.SystemIdentifier != nil {
			b.WriteString(" system=" + *tok.DocType.SystemIdentifier)
		}
		if tok.DocType.ForceQuirks {
			b.WriteString(" force-quirks")
		}
	case TagToken:
		if tok.Tag.IsEndTag {
			b.WriteString("EndTag ")
		} else {
			b.WriteString("StartTag ")
		}
		b.WriteString(tok.Tag.Name)
		if tok.Tag.IsEmptyElement {
			b.WriteString(" /")
		}
		for _, a := range tok.Tag.Attributes {
			b.WriteString(" " + a.Name + "=" + a.Value)
		}
	}
	return b.String()
}

// TestGoldenFiles walks testdata for txtar archives, each with an
// "input.html" member and a "tokens.txt" member listing the expected
// one-line-per-token description of tokenizing input.html.
func TestGoldenFiles(t *testing.T) {
	entries, err := os.ReadDir("../testdata")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txtar") {
			continue
		}
		name := e.Name()
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(filepath.Join("../testdata", name))
			if err != nil {
				t.Fatalf("ParseFile: %v", err)
			}
			var input, wantTokens string
			for _, f := range archive.Files {
				switch f.Name {
				case "input.html":
					input = strings.TrimSpace(string(f.Data))
				case "tokens.txt":
					wantTokens = string(f.Data)
				}
			}
			tok := New(NewStringSource(input), DefaultConfig())
			tokens := collectAll(t, tok)
			var got strings.Builder
			for _, tt := range tokens {
				got.WriteString(describeToken(tt))
				got.WriteString("\n")
			}
			if diff := cmp.Diff(strings.TrimRight(wantTokens, "\n"), strings.TrimRight(got.String(), "\n")); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDataStateEmitsPlainText(t *testing.T) {
	tok := New(NewStringSource("hello world"), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || tokens[0].Type != DataToken || tokens[0].Text != "hello world" {
		t.Fatalf("got %+v, want single Data token \"hello world\"", tokens)
	}
}

func TestStartAndEndTagWithAttributes(t *testing.T) {
	tok := New(NewStringSource(`<a href="x" target='_blank' disabled>link</a>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(tokens), tokens)
	}
	if tokens[0].Type != TagToken || tokens[0].Tag.IsEndTag || tokens[0].Tag.Name != "a" {
		t.Fatalf("tokens[0] = %+v, want start tag a", tokens[0])
	}
	want := []Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "_blank"},
		{Name: "disabled", Value: ""},
	}
	for i, a := range want {
		got := tokens[0].Tag.Attributes[i]
		if got.Name != a.Name || got.Value != a.Value {
			t.Errorf("attr[%d] = %+v, want %+v", i, got, a)
		}
	}
	if tokens[1].Type != DataToken || tokens[1].Text != "link" {
		t.Fatalf("tokens[1] = %+v, want Data \"link\"", tokens[1])
	}
	if tokens[2].Type != TagToken || !tokens[2].Tag.IsEndTag || tokens[2].Tag.Name != "a" {
		t.Fatalf("tokens[2] = %+v, want end tag a", tokens[2])
	}
}

func TestDuplicateAttributeFirstWins(t *testing.T) {
	tok := New(NewStringSource(`<p a="1" a="2">`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || len(tokens[0].Tag.Attributes) != 1 {
		t.Fatalf("got %+v, want single tag with one attribute", tokens)
	}
	if tokens[0].Tag.Attributes[0].Value != "1" {
		t.Errorf("attribute value = %q, want %q (first occurrence wins)", tokens[0].Tag.Attributes[0].Value, "1")
	}
}

func TestSelfClosingStartTag(t *testing.T) {
	tok := New(NewStringSource(`<br/>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || !tokens[0].Tag.IsEmptyElement {
		t.Fatalf("got %+v, want a single self-closing tag", tokens)
	}
}

func TestScriptDataDoesNotDecodeEntitiesOrEndOnRCDataRules(t *testing.T) {
	tok := New(NewStringSource(`<script>if (a < b) { x = "&amp;"; }</script>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(tokens), tokens)
	}
	if tokens[1].Type != ScriptDataToken {
		t.Fatalf("tokens[1].Type = %v, want ScriptDataToken", tokens[1].Type)
	}
	if !strings.Contains(tokens[1].Text, "&amp;") {
		t.Errorf("script data text = %q, want literal &amp; (no entity decoding)", tokens[1].Text)
	}
}

func TestScriptDataEscapedNestedComment(t *testing.T) {
	src := `<script>var x = "<!--<script>-->";</script>`
	tok := New(NewStringSource(src), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 3 || tokens[2].Tag.Name != "script" || !tokens[2].Tag.IsEndTag {
		t.Fatalf("got %+v, want [StartTag script, ScriptData, EndTag script]", tokens)
	}
}

func TestRCDataTextareaDecodesEntitiesButNotTags(t *testing.T) {
	tok := New(NewStringSource(`<textarea>&lt;b&gt;not bold&lt;/b&gt;</textarea>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(tokens), tokens)
	}
	if tokens[1].Text != "<b>not bold</b>" {
		t.Errorf("RCDATA text = %q, want decoded entities with literal tag-like text", tokens[1].Text)
	}
}

func TestCommentToken(t *testing.T) {
	tok := New(NewStringSource(`<!-- a comment --><p>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 2 || tokens[0].Type != CommentToken || tokens[0].Text != " a comment " {
		t.Fatalf("got %+v, want [Comment \" a comment \", StartTag p]", tokens)
	}
}

func TestDocTypeToken(t *testing.T) {
	tok := New(NewStringSource(`<!DOCTYPE html>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || tokens[0].Type != DocTypeToken {
		t.Fatalf("got %+v, want single DocType token", tokens)
	}
	if tokens[0].DocType.Name == nil || *tokens[0].DocType.Name != "html" {
		t.Errorf("DocType.Name = %v, want \"html\"", tokens[0].DocType.Name)
	}
	if tokens[0].DocType.ForceQuirks {
		t.Error("ForceQuirks = true, want false for a well-formed doctype")
	}
}

func TestDocTypeMissingNameForcesQuirks(t *testing.T) {
	tok := New(NewStringSource(`<!DOCTYPE>`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || !tokens[0].DocType.ForceQuirks {
		t.Fatalf("got %+v, want a single force-quirks DocType token", tokens)
	}
}

func TestNulInDataIsKeptAsIs(t *testing.T) {
	tok := New(NewStringSource("a\x00b"), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || tokens[0].Text != "a\x00b" {
		t.Fatalf("got %+v, want the NUL preserved in Data content", tokens)
	}
}

func TestNulInRawTextBecomesReplacementChar(t *testing.T) {
	tok := New(NewStringSource("<style>a\x00b</style>"), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 3 || tokens[1].Text != "a�b" {
		t.Fatalf("got %+v, want the NUL replaced with U+FFFD in RAWTEXT content", tokens)
	}
}

func TestUnterminatedTagAtEOFFlushesRawText(t *testing.T) {
	tok := New(NewStringSource(`hello <b`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(tokens), tokens)
	}
	if tokens[0].Text != "hello " {
		t.Errorf("tokens[0].Text = %q, want %q", tokens[0].Text, "hello ")
	}
	if tokens[1].Type != DataToken || tokens[1].Text != "<b" {
		t.Errorf("tokens[1] = %+v, want flushed raw \"<b\"", tokens[1])
	}
}

func TestNextReturnsFalseForeverAfterEndOfFile(t *testing.T) {
	tok := New(NewStringSource("x"), DefaultConfig())
	if _, ok := tok.Next(); !ok {
		t.Fatal("first Next() = false, want a Data token")
	}
	for i := 0; i < 3; i++ {
		if _, ok := tok.Next(); ok {
			t.Fatalf("Next() after EndOfFile returned ok=true on call %d", i)
		}
	}
	if tok.State() != StateEndOfFile {
		t.Errorf("State() = %v, want EndOfFile", tok.State())
	}
}

func TestHtmlTagWithNamespaceXmlnsSwitchesNamespace(t *testing.T) {
	tok := New(NewStringSource(`<html xmlns="http://www.w3.org/2000/svg">`), DefaultConfig())
	collectAll(t, tok)
	if tok.Namespace() != NamespaceSVG {
		t.Errorf("Namespace() = %v, want NamespaceSVG", tok.Namespace())
	}
}

func TestAmbiguousAmpersandInAttributeValueLeftRaw(t *testing.T) {
	tok := New(NewStringSource(`<a href="foo?a=1&copy=2">`), DefaultConfig())
	tokens := collectAll(t, tok)
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(tokens), tokens)
	}
	got := tokens[0].Tag.Attributes[0].Value
	want := "foo?a=1&copy=2"
	if got != want {
		t.Errorf("attribute value = %q, want %q (ambiguous ampersand left raw)", got, want)
	}
}

func TestCharacterReferenceDecodingDisabled(t *testing.T) {
	cfg := Config{DecodeCharacterReferences: false}
	tok := New(NewStringSource("a &amp; b"), cfg)
	tokens := collectAll(t, tok)
	if len(tokens) != 1 || tokens[0].Text != "a &amp; b" {
		t.Fatalf("got %+v, want entity decoding disabled to leave &amp; literal", tokens)
	}
}
