package netbuf

import (
	"testing"
)

// =============================================================================
// Method: IndexByte()
// =============================================================================

func TestIndexByte(t *testing.T) {
	tests := []struct {
		name    string
		content string
		c       byte
		want    int
	}{
		{"found", "hello", 'l', 2},
		{"first_byte", "hello", 'h', 0},
		{"last_byte", "hello", 'o', 4},
		{"not_found", "hello", 'z', -1},
		{"empty", "", 'a', -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(256)
			b.AppendString(tt.content)
			if got := b.IndexByte(tt.c); got != tt.want {
				t.Errorf("IndexByte(%q) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestIndexByte_RelativeToReader(t *testing.T) {
	b := New(256)
	b.AppendString("xx:yy")
	b.Retrieve(2)

	// Offsets are relative to the readable view, not the storage.
	if got := b.IndexByte(':'); got != 0 {
		t.Errorf("IndexByte = %d, want 0", got)
	}
}

// =============================================================================
// Methods: FindCRLF() / FindEOL()
// =============================================================================

func TestFindCRLF(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"present", "GET / HTTP/1.1\r\nHost: x", 14},
		{"at_start", "\r\nrest", 0},
		{"absent", "no terminator", -1},
		{"lone_cr", "half\rway", -1},
		{"lone_lf", "half\nway", -1},
		{"empty", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(256)
			b.AppendString(tt.content)
			if got := b.FindCRLF(); got != tt.want {
				t.Errorf("FindCRLF = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindEOL(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"present", "line one\nline two", 8},
		{"crlf_finds_lf", "a\r\nb", 2},
		{"absent", "no newline", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(256)
			b.AppendString(tt.content)
			if got := b.FindEOL(); got != tt.want {
				t.Errorf("FindEOL = %d, want %d", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Line-oriented parsing with RetrieveUntil
// =============================================================================

func TestLineParsing(t *testing.T) {
	b := New(256)
	b.AppendString("GET /index HTTP/1.1\r\nHost: example.com\r\n\r\n")

	var lines []string
	for {
		i := b.FindCRLF()
		if i < 0 {
			break
		}
		lines = append(lines, b.RetrieveString(i))
		b.Retrieve(len(crlf))
	}

	want := []string{"GET /index HTTP/1.1", "Host: example.com", ""}
	if len(lines) != len(want) {
		t.Fatalf("parsed %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if !b.IsEmpty() {
		t.Errorf("leftover %q, want empty", b.Peek())
	}
}

func TestRetrieveUntil_AfterFind(t *testing.T) {
	b := New(256)
	b.AppendString("header\r\nbody bytes")

	i := b.FindCRLF()
	if i != 6 {
		t.Fatalf("FindCRLF = %d, want 6", i)
	}

	// Drop the header and its terminator by pointing at the remainder.
	b.RetrieveUntil(b.Peek()[i+len(crlf):])
	if got := b.RetrieveAllString(); got != "body bytes" {
		t.Errorf("remainder = %q, want %q", got, "body bytes")
	}
}
