package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "My Note.md", want: "my-note"},
		{in: "Hello, World!!.md", want: "hello-world"},
		{in: "  --spaced--  .md", want: "spaced"},
		{in: "Go 1.25 Release.md", want: "go-1-25-release"},
		{in: "안녕 하세요.md", want: "안녕-하세요"},
		{in: "Café au lait.md", want: "caf-au-lait"},
		{in: "archive.tar.md", want: "archive-tar"},
		{in: "NOTES.MD", want: "notes"},
		{in: "no-extension", want: "no-extension"},
		{in: "???.md", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"My Note.md", "Ünïcödé: test.md", "한글 Title 2.md", "a__b..c.md", "-x-.md"}
	for _, in := range inputs {
		first := Make(in)
		if again := Make(first + Ext); again != first {
			t.Errorf("Make(Make(%q)+%q) = %q, want %q", in, Ext, again, first)
		}
	}
}

func TestMake_Collision(t *testing.T) {
	if Make("My Note.md") != Make("my_note.md") {
		t.Error("expected both names to share a slug")
	}
}
