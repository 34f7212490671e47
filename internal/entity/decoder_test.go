package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pushAll(t *testing.T, d *Decoder, s string) (consumed int) {
	t.Helper()
	for i, r := range s {
		if !d.Push(r) {
			return i
		}
		consumed = i + len(string(r))
	}
	return consumed
}

func TestDecoderLongestMatch(t *testing.T) {
	var d Decoder
	n := pushAll(t, &d, "&amp;rest")
	if got, want := d.GetValue(), "&"; got != want {
		t.Errorf("GetValue() = %q, want %q", got, want)
	}
	if n != len("&amp;") {
		t.Errorf("consumed %d runes, want %d", n, len("&amp;"))
	}
}

func TestDecoderNoSemicolonFallsBackToLegacyForm(t *testing.T) {
	var d Decoder
	pushAll(t, &d, "&amp")
	if got, want := d.GetValue(), "&"; got != want {
		t.Errorf("GetValue() = %q, want %q", got, want)
	}
}

func TestDecoderNoMatchReturnsPushedInput(t *testing.T) {
	var d Decoder
	pushAll(t, &d, "&nonentity")
	if got, want := d.GetValue(), d.GetPushedInput(); got != want {
		t.Errorf("GetValue() = %q, want pushed input %q", got, want)
	}
	if diff := cmp.Diff("&nonentity", d.GetPushedInput()); diff != "" {
		t.Errorf("GetPushedInput() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderRejectsNonPrefixCharacterWithoutMutating(t *testing.T) {
	var d Decoder
	if !d.Push('&') {
		t.Fatal("Push('&') = false, want true")
	}
	if !d.Push('a') {
		t.Fatal("Push('a') = false, want true")
	}
	if d.Push(';') {
		t.Fatal("Push(';') after 'a' = true, want false (\"a;\" is not a reference)")
	}
	if got, want := d.GetPushedInput(), "&a"; got != want {
		t.Errorf("GetPushedInput() = %q, want %q (failed push must not mutate state)", got, want)
	}
}

func TestDecoderReset(t *testing.T) {
	var d Decoder
	pushAll(t, &d, "&amp;")
	d.Reset()
	if got := d.GetPushedInput(); got != "" {
		t.Errorf("GetPushedInput() after Reset() = %q, want empty", got)
	}
	if got, want := d.GetValue(), ""; got != want {
		t.Errorf("GetValue() after Reset() = %q, want %q", got, want)
	}
	// A reset decoder must be reusable.
	pushAll(t, &d, "&notin;")
	if got, want := d.GetValue(), "∉"; got != want {
		t.Errorf("GetValue() after reuse = %q, want %q", got, want)
	}
}
