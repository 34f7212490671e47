// Package entity implements a stateful, longest-prefix matcher over the
// HTML5 named character references, used by the tokenizer as an external
// collaborator for decoding character references.
//
// The decoder is a push interface rather than a whole-string lookup because
// the tokenizer discovers the extent of a character reference one rune at a
// time, with arbitrary lookahead cut off by whatever terminates the
// reference (whitespace, '<', '&', the attribute-value quote, EOF).
package entity

// Decoder is a longest-prefix matcher over the named-reference trie. The
// zero value is ready to use.
type Decoder struct {
	cur    *node
	dead   bool // trie diverged; still collecting a candidate name
	pushed []rune

	matchValue string
	haveMatch  bool
}

func isEntityNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Push attempts to extend the current prefix with ch. It reports whether ch
// continues a sequence that remains a potentially valid named reference
// (possibly the leading '&', which always succeeds). On success ch is
// appended to the pushed sequence and, if the new prefix is itself a
// complete reference name, the decoder's longest match is updated. On
// failure the decoder is left exactly as it was before the call — the
// caller is expected not to treat ch as consumed.
//
// A reference that has already matched a name terminated by ';' is closed:
// no further character extends it. Short of that, once the trie itself
// offers no continuation for ch, the decoder still accepts further
// alphanumerics as a candidate name (so a caller can tell a failed match
// like "&nonentity" from a terminator it should stop at), but a
// non-alphanumeric character always ends the reference.
func (d *Decoder) Push(ch rune) bool {
	if len(d.pushed) == 0 {
		if ch != '&' {
			return false
		}
		d.cur = &root
		d.pushed = append(d.pushed, ch)
		return true
	}
	if d.pushed[len(d.pushed)-1] == ';' {
		return false
	}
	if d.dead {
		if !isEntityNameChar(ch) {
			return false
		}
		d.pushed = append(d.pushed, ch)
		return true
	}
	next, ok := d.cur.children[ch]
	if ok {
		d.cur = next
		d.pushed = append(d.pushed, ch)
		if next.value != "" {
			d.matchValue = next.value
			d.haveMatch = true
		}
		return true
	}
	if isEntityNameChar(ch) {
		d.dead = true
		d.cur = nil
		d.pushed = append(d.pushed, ch)
		return true
	}
	return false
}

// GetValue returns the longest matched expansion seen so far, or the raw
// pushed input if no named reference has matched yet.
func (d *Decoder) GetValue() string {
	if d.haveMatch {
		return d.matchValue
	}
	return d.GetPushedInput()
}

// GetPushedInput returns the full sequence of characters accepted by Push
// so far, including the leading '&'.
func (d *Decoder) GetPushedInput() string {
	return string(d.pushed)
}

// Reset clears all state, returning the decoder to its zero value.
func (d *Decoder) Reset() {
	d.cur = nil
	d.dead = false
	d.pushed = d.pushed[:0]
	d.matchValue = ""
	d.haveMatch = false
}
