package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
		wantErr  bool
	}{
		{"plain", "cv.pdf", "cv.pdf", false},
		{"windows path", `C:\Users\jane\cv.pdf`, "cv.pdf", false},
		{"unix path", "/tmp/uploads/cv.docx", "cv.docx", false},
		{"traversal", "../../etc/passwd", "", true},
		{"blank", "   ", "", true},
		{"control characters", "cv\x00.txt", "cv.txt", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SanitizeFileName(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
