package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}

	if got := truncate("abc", 2); got != "ab" {
		t.Fatalf("expected hard cut for tiny max, got %q", got)
	}
}

func TestStr(t *testing.T) {
	if got := str(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}
	if got := str("value"); got != "value" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := str(42.0); got != "42" {
		t.Fatalf("expected formatted number, got %q", got)
	}
}

func TestCheckConsistencyOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/consistency" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"consistent":true,"total_balance":"1500","total_recorded":"1500"}`))
	}))
	defer server.Close()

	baseURL = server.URL

	output := captureOutput(t, checkConsistency)

	if !strings.Contains(output, "Consistency check PASSED") {
		t.Fatalf("expected pass message, got %q", output)
	}
	if !strings.Contains(output, "1500") {
		t.Fatalf("expected totals in output, got %q", output)
	}
}

func TestListPendingApprovalsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	baseURL = server.URL

	output := captureOutput(t, func() {
		listPendingApprovals("", "", 20)
	})

	if !strings.Contains(output, "No pending approval requests.") {
		t.Fatalf("expected empty message, got %q", output)
	}
}
