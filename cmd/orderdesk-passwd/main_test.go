package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/orderdesk/internal/storage/memory"
)

func TestRunPrintsStaffEntry(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-login", "admin", "-password", "secret", "-cost", "4"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := strings.TrimSpace(out.String())
	login, hash, ok := strings.Cut(entry, ":")
	if !ok || login != "admin" {
		t.Fatalf("unexpected entry %q", entry)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
	if _, err := memory.ParseStaff(entry); err != nil {
		t.Fatalf("entry must be accepted by the staff directory: %v", err)
	}
}

func TestRunReadsPasswordFromStdin(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-login", "ops", "-cost", "4"}, strings.NewReader("s3cret\nignored\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, hash, _ := strings.Cut(strings.TrimSpace(out.String()), ":")
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")); err != nil {
		t.Fatalf("expected stdin password to be hashed: %v", err)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
	}{
		{"missing login", []string{"-password", "x"}, ""},
		{"separator in login", []string{"-login", "a:b", "-password", "x"}, ""},
		{"empty password", []string{"-login", "admin"}, "\n"},
		{"unknown flag", []string{"-nope"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tc.args, strings.NewReader(tc.stdin), &out); err == nil {
				t.Fatalf("expected error, got output %q", out.String())
			}
		})
	}
}
