package tokenizer

// State is one variant of the ~70-state tokenization state machine described
// by the WHATWG HTML parsing specification. Data is the initial state;
// EndOfFile is the absorbing terminal state.
type State int

const (
	StateData State = iota
	StateRCData
	StateRawText
	StateScriptData
	StatePlainText

	StateTagOpen
	StateEndTagOpen
	StateTagName
	StateBogusComment

	StateBeforeAttributeName
	StateAttributeName
	StateAfterAttributeName
	StateBeforeAttributeValue
	StateAttributeValueDoubleQuoted
	StateAttributeValueSingleQuoted
	StateAttributeValueUnquoted
	StateAfterAttributeValueQuoted
	StateSelfClosingStartTag

	StateMarkupDeclarationOpen

	StateCommentStart
	StateCommentStartDash
	StateComment
	StateCommentEndDash
	StateCommentEnd
	StateCommentEndBang

	StateDocType
	StateBeforeDocTypeName
	StateDocTypeName
	StateAfterDocTypeName
	StateAfterDocTypePublicKeyword
	StateBeforeDocTypePublicIdentifier
	StateDocTypePublicIdentifierDoubleQuoted
	StateDocTypePublicIdentifierSingleQuoted
	StateAfterDocTypePublicIdentifier
	StateBetweenDocTypePublicAndSystemIdentifiers
	StateAfterDocTypeSystemKeyword
	StateBeforeDocTypeSystemIdentifier
	StateDocTypeSystemIdentifierDoubleQuoted
	StateDocTypeSystemIdentifierSingleQuoted
	StateAfterDocTypeSystemIdentifier
	StateBogusDocType

	StateCDataSection
	StateCDataSectionBracket
	StateCDataSectionEnd

	StateCharacterReferenceInData
	StateCharacterReferenceInRCData
	StateCharacterReferenceInAttributeValue

	StateRCDataLessThan
	StateRCDataEndTagOpen
	StateRCDataEndTagName

	StateRawTextLessThan
	StateRawTextEndTagOpen
	StateRawTextEndTagName

	StateScriptDataLessThan
	StateScriptDataEndTagOpen
	StateScriptDataEndTagName

	StateScriptDataEscapeStart
	StateScriptDataEscapeStartDash
	StateScriptDataEscaped
	StateScriptDataEscapedDash
	StateScriptDataEscapedDashDash
	StateScriptDataEscapedLessThan
	StateScriptDataEscapedEndTagOpen
	StateScriptDataEscapedEndTagName

	StateScriptDataDoubleEscapeStart
	StateScriptDataDoubleEscaped
	StateScriptDataDoubleEscapedDash
	StateScriptDataDoubleEscapedDashDash
	StateScriptDataDoubleEscapedLessThan
	StateScriptDataDoubleEscapeEnd

	// StateEmitPendingTag resumes a raw-text-family end tag whose sealing
	// had to flush a preceding text token first; t.tag is already built and
	// this state only emits it.
	StateEmitPendingTag

	StateEndOfFile
)

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

var stateNames = map[State]string{
	StateData:                                     "Data",
	StateRCData:                                    "RCData",
	StateRawText:                                   "RawText",
	StateScriptData:                                "ScriptData",
	StatePlainText:                                 "PlainText",
	StateTagOpen:                                   "TagOpen",
	StateEndTagOpen:                                "EndTagOpen",
	StateTagName:                                   "TagName",
	StateBogusComment:                              "BogusComment",
	StateBeforeAttributeName:                       "BeforeAttributeName",
	StateAttributeName:                             "AttributeName",
	StateAfterAttributeName:                        "AfterAttributeName",
	StateBeforeAttributeValue:                      "BeforeAttributeValue",
	StateAttributeValueDoubleQuoted:                "AttributeValueDoubleQuoted",
	StateAttributeValueSingleQuoted:                "AttributeValueSingleQuoted",
	StateAttributeValueUnquoted:                    "AttributeValueUnquoted",
	StateAfterAttributeValueQuoted:                 "AfterAttributeValueQuoted",
	StateSelfClosingStartTag:                       "SelfClosingStartTag",
	StateMarkupDeclarationOpen:                     "MarkupDeclarationOpen",
	StateCommentStart:                              "CommentStart",
	StateCommentStartDash:                          "CommentStartDash",
	StateComment:                                   "Comment",
	StateCommentEndDash:                            "CommentEndDash",
	StateCommentEnd:                                "CommentEnd",
	StateCommentEndBang:                            "CommentEndBang",
	StateDocType:                                   "DocType",
	StateBeforeDocTypeName:                         "BeforeDocTypeName",
	StateDocTypeName:                               "DocTypeName",
	StateAfterDocTypeName:                          "AfterDocTypeName",
	StateAfterDocTypePublicKeyword:                 "AfterDocTypePublicKeyword",
	StateBeforeDocTypePublicIdentifier:             "BeforeDocTypePublicIdentifier",
	StateDocTypePublicIdentifierDoubleQuoted:       "DocTypePublicIdentifierDoubleQuoted",
	StateDocTypePublicIdentifierSingleQuoted:       "DocTypePublicIdentifierSingleQuoted",
	StateAfterDocTypePublicIdentifier:              "AfterDocTypePublicIdentifier",
	StateBetweenDocTypePublicAndSystemIdentifiers:  "BetweenDocTypePublicAndSystemIdentifiers",
	StateAfterDocTypeSystemKeyword:                 "AfterDocTypeSystemKeyword",
	StateBeforeDocTypeSystemIdentifier:             "BeforeDocTypeSystemIdentifier",
	StateDocTypeSystemIdentifierDoubleQuoted:       "DocTypeSystemIdentifierDoubleQuoted",
	StateDocTypeSystemIdentifierSingleQuoted:       "DocTypeSystemIdentifierSingleQuoted",
	StateAfterDocTypeSystemIdentifier:              "AfterDocTypeSystemIdentifier",
	StateBogusDocType:                              "BogusDocType",
	StateCDataSection:                              "CDataSection",
	StateCDataSectionBracket:                       "CDataSectionBracket",
	StateCDataSectionEnd:                           "CDataSectionEnd",
	StateCharacterReferenceInData:                  "CharacterReferenceInData",
	StateCharacterReferenceInRCData:                "CharacterReferenceInRCData",
	StateCharacterReferenceInAttributeValue:        "CharacterReferenceInAttributeValue",
	StateRCDataLessThan:                            "RCDataLessThan",
	StateRCDataEndTagOpen:                          "RCDataEndTagOpen",
	StateRCDataEndTagName:                          "RCDataEndTagName",
	StateRawTextLessThan:                           "RawTextLessThan",
	StateRawTextEndTagOpen:                         "RawTextEndTagOpen",
	StateRawTextEndTagName:                         "RawTextEndTagName",
	StateScriptDataLessThan:                        "ScriptDataLessThan",
	StateScriptDataEndTagOpen:                      "ScriptDataEndTagOpen",
	StateScriptDataEndTagName:                      "ScriptDataEndTagName",
	StateScriptDataEscapeStart:                     "ScriptDataEscapeStart",
	StateScriptDataEscapeStartDash:                 "ScriptDataEscapeStartDash",
	StateScriptDataEscaped:                         "ScriptDataEscaped",
	StateScriptDataEscapedDash:                     "ScriptDataEscapedDash",
	StateScriptDataEscapedDashDash:                 "ScriptDataEscapedDashDash",
	StateScriptDataEscapedLessThan:                 "ScriptDataEscapedLessThan",
	StateScriptDataEscapedEndTagOpen:               "ScriptDataEscapedEndTagOpen",
	StateScriptDataEscapedEndTagName:               "ScriptDataEscapedEndTagName",
	StateScriptDataDoubleEscapeStart:               "ScriptDataDoubleEscapeStart",
	StateScriptDataDoubleEscaped:                   "ScriptDataDoubleEscaped",
	StateScriptDataDoubleEscapedDash:               "ScriptDataDoubleEscapedDash",
	StateScriptDataDoubleEscapedDashDash:           "ScriptDataDoubleEscapedDashDash",
	StateScriptDataDoubleEscapedLessThan:           "ScriptDataDoubleEscapedLessThan",
	StateScriptDataDoubleEscapeEnd:                 "ScriptDataDoubleEscapeEnd",
	StateEmitPendingTag:                            "EmitPendingTag",
	StateEndOfFile:                                 "EndOfFile",
}
