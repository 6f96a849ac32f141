package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("alice\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter user name", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("expected %q, got %q", "alice", got)
	}
	if !strings.Contains(out.String(), "Enter user name") {
		t.Fatalf("prompt was not written")
	}
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("bob"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "prompt", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bob" {
		t.Fatalf("expected %q, got %q", "bob", got)
	}
}

func TestGetSimpleText_EmptyInputEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(reader, "prompt", &out); err == nil {
		t.Fatalf("expected error on empty EOF input")
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Fatalf("expected stubbed password, got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Fatalf("prompt was not written")
	}
}
