package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Simplici0/printquote/internal/quote"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPriceCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no options",
			args: []string{"price", "--width", "48", "--height", "96"},
			want: []string{"Area:      32.00 sq ft", "Total:     $112.00"},
		},
		{
			name: "all options",
			args: []string{"price", "--width", "48", "--height", "96", "--rush", "--mounting", "--grommets", "4"},
			want: []string{"Rush:      +$28.00", "Mounting:  +$96.00", "Grommets:  +$4.00", "Total:     $240.00"},
		},
		{
			name: "explicit rate",
			args: []string{"price", "--width", "48", "--height", "96", "--material", "canvas", "--rate", "2.5"},
			want: []string{"Total:     $80.00"},
		},
		{
			name: "material rate",
			args: []string{"price", "--width", "48", "--height", "96", "--material", "canvas"},
			want: []string{"Total:     $160.00"},
		},
		{
			name: "malformed numbers",
			args: []string{"price", "--width", "wide", "--height", "96"},
			want: []string{"Total:     $0.00"},
		},
		{
			name: "huge dimensions with zero rate",
			args: []string{"price", "--width", "1e300", "--height", "1e300", "--rate", "0"},
			want: []string{"Area:      6944444444.44 sq ft", "Total:     $0.00"},
		},
		{
			name: "overflowing dimensions",
			args: []string{"price", "--width", "1e400", "--height", "96"},
			want: []string{"Total:     $0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Fatalf("expected output to contain %q, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestBlueprintCommand(t *testing.T) {
	out, err := runCmd(t, "blueprint", "--pages", "10", "--sets", "3", "--bindings", "1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Total:     $28.50") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, err = runCmd(t, "blueprint", "--pages", "10", "--sets", "3", "--bindings", "2", "--page-price", "1", "--binding-price", "1.5")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Total:     $39.00") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestBlueprintCommandClampsHugeCounts(t *testing.T) {
	out, err := runCmd(t, "blueprint", "--pages", "4000000000", "--sets", "99999999999999999999", "--bindings", "0")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Pages:     1600000000", "Total:     $1,200,000,000.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "-$") {
		t.Fatalf("negative amount in output:\n%s", out)
	}
}

func TestMaterialsCommand(t *testing.T) {
	out, err := runCmd(t, "materials")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"vinyl", "Vinyl Banner", "$3.50/sq ft", "fabric"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestQuoteCommandToStdout(t *testing.T) {
	out, err := runCmd(t, "quote", "--width", "48", "--height", "96", "--name", "Ada")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"Print Quote", "- Name: Ada", "Total: $112.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestQuoteCommandRequiresCompleteJob(t *testing.T) {
	_, err := runCmd(t, "quote", "--width", "48")
	if err == nil || !strings.Contains(err.Error(), quote.ErrIncompleteJob.Error()) {
		t.Fatalf("expected incomplete job error, got %v", err)
	}
}

func TestQuoteCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()

	for ext, prefix := range map[string]string{
		".pdf":  "%PDF-",
		".xlsx": "PK",
		".txt":  "Print Quote",
	} {
		path := filepath.Join(dir, "quote"+ext)
		out, err := runCmd(t, "quote", "--blueprint", "--pages", "10", "--sets", "3", "--bindings", "1", "--out", path)
		if err != nil {
			t.Fatalf("%s: execute: %v", ext, err)
		}
		if !strings.Contains(out, "total $28.50") {
			t.Fatalf("%s: unexpected output %q", ext, out)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: read output: %v", ext, err)
		}
		if !bytes.HasPrefix(body, []byte(prefix)) {
			t.Fatalf("%s: file does not start with %q", ext, prefix)
		}
	}

	if _, err := runCmd(t, "quote", "--width", "48", "--height", "96", "--out", filepath.Join(dir, "quote.doc")); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
