package input

import "testing"

func typeText(e *LineEditor, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

func TestLineEditorLimit(t *testing.T) {
	e := NewLineEditor(5)
	typeText(e, "abcdef")

	if e.Text() != "abcd" {
		t.Errorf("text = %q, want %q (width-1 runes)", e.Text(), "abcd")
	}
	if e.Insert('x') {
		t.Error("Insert accepted a rune into a full line")
	}
	if e.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", e.Cursor())
	}
}

func TestLineEditorEditing(t *testing.T) {
	tests := []struct {
		name   string
		keys   []Key
		text   string
		cursor int
	}{
		{"insert", []Key{{KeyRune, 'p'}, {KeyRune, 'e'}, {KeyRune, 'w'}}, "pew", 3},
		{"backspace at end", []Key{{KeyRune, 'a'}, {KeyRune, 'b'}, {Kind: KeyBackspace}}, "a", 1},
		{"backspace on empty line", []Key{{Kind: KeyBackspace}, {Kind: KeyBackspace}}, "", 0},
		{"backspace at start", []Key{{KeyRune, 'a'}, {Kind: KeyHome}, {Kind: KeyBackspace}}, "a", 0},
		{"delete at cursor", []Key{{KeyRune, 'a'}, {KeyRune, 'b'}, {Kind: KeyHome}, {Kind: KeyDelete}}, "b", 0},
		{"delete at end", []Key{{KeyRune, 'a'}, {Kind: KeyDelete}}, "a", 1},
		{"insert mid-line", []Key{{KeyRune, 'p'}, {KeyRune, 'w'}, {Kind: KeyLeft}, {KeyRune, 'e'}}, "pew", 2},
		{"left clamps", []Key{{KeyRune, 'a'}, {Kind: KeyLeft}, {Kind: KeyLeft}}, "a", 0},
		{"right clamps", []Key{{KeyRune, 'a'}, {Kind: KeyRight}}, "a", 1},
		{"home then end", []Key{{KeyRune, 'a'}, {KeyRune, 'b'}, {Kind: KeyHome}, {Kind: KeyEnd}}, "ab", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewLineEditor(60)
			for _, k := range tc.keys {
				if !e.Handle(k) {
					t.Fatalf("Handle(%+v) = false", k)
				}
			}
			if e.Text() != tc.text || e.Cursor() != tc.cursor {
				t.Errorf("got %q cursor %d, want %q cursor %d", e.Text(), e.Cursor(), tc.text, tc.cursor)
			}
		})
	}
}

func TestLineEditorSubmit(t *testing.T) {
	e := NewLineEditor(60)
	typeText(e, "pew")

	if got := e.Submit(); got != "pew" {
		t.Errorf("Submit = %q", got)
	}
	if e.Len() != 0 || e.Cursor() != 0 {
		t.Errorf("editor not cleared: %q cursor %d", e.Text(), e.Cursor())
	}
	if e.Handle(Key{Kind: KeyEnter}) || e.Handle(Key{Kind: KeyInterrupt}) {
		t.Error("Handle consumed a non-editing key")
	}
}
