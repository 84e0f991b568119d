package forms_test

import (
	"testing"
	"time"

	"github.com/kgnconstruction/kgnbackend/forms"
)

func TestReference(t *testing.T) {
	at := time.UnixMilli(1718000000123)
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "1718000000123"},
		{"CP-", "CP-1718000000123"},
		{"CM-", "CM-1718000000123"},
	}
	for _, tt := range tests {
		if got := forms.Reference(tt.prefix, at); got != tt.want {
			t.Fatalf("Reference(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{"", ""},
		{"<b>bold</b> move", "bold move"},
		{"Tom & Jerry's \"house\"", "Tom & Jerry's \"house\""},
		{"<img src=x onerror=alert(1)>ok", "ok"},
	}
	for _, tt := range tests {
		if got := forms.Clean(tt.in); got != tt.want {
			t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
