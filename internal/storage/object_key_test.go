package storage

import (
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	now := time.Unix(0, 42)

	tests := []struct {
		name string
		hint string
		data []byte
		want string
	}{
		{"sniffed extension wins", "My Dog.JPG", png, "my_dog_42.png"},
		{"client extension kept", "clip.MOV", []byte("not sniffable"), "clip_42.mov"},
		{"path traversal stripped", "../../etc/passwd", []byte("x"), "passwd_42"},
		{"windows path", `C:\Users\bob\beach.png`, png, "beach_42.png"},
		{"empty stem", ".png", png, "media_42.png"},
		{"unicode replaced", "café☕.png", png, "caf_42.png"},
		{"odd extension dropped", "notes.t$t", []byte("x"), "notes_42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObjectKey(tc.hint, tc.data, now); got != tc.want {
				t.Errorf("ObjectKey(%q) = %q; want %q", tc.hint, got, tc.want)
			}
		})
	}
}

func TestSanitiseStem_Truncates(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	if got := sanitiseStem(string(long) + ".png"); len(got) != maxStemLength {
		t.Errorf("len = %d; want %d", len(got), maxStemLength)
	}
}
