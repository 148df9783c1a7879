package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestParseDotEnvLine(t *testing.T) {
	tests := []struct {
		line      string
		key, val  string
		wantParse bool
	}{
		{line: "", wantParse: false},
		{line: "# comment", wantParse: false},
		{line: "=value", wantParse: false},
		{line: "NOEQUALS", wantParse: false},
		{line: "PORT=9090", key: "PORT", val: "9090", wantParse: true},
		{line: "export LOG_LEVEL=debug", key: "LOG_LEVEL", val: "debug", wantParse: true},
		{line: `ENVIRONMENT="production"`, key: "ENVIRONMENT", val: "production", wantParse: true},
		{line: "GREETING='hello # world'", key: "GREETING", val: "hello # world", wantParse: true},
		{line: "QUOTE_RATE_BURST=8 # per client", key: "QUOTE_RATE_BURST", val: "8", wantParse: true},
		{line: "  EMPTY=  ", key: "EMPTY", val: "", wantParse: true},
	}

	for _, tt := range tests {
		key, val, ok := parseDotEnvLine(tt.line)
		if ok != tt.wantParse || key != tt.key || val != tt.val {
			t.Fatalf("parseDotEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, val, ok, tt.key, tt.val, tt.wantParse)
		}
	}
}

func TestLoadDotEnv_SetsValuesAndKeepsExistingEnv(t *testing.T) {
	t.Setenv("PQ_TEST_PORT", "")
	t.Setenv("PQ_TEST_KEEP", "already")

	path := writeDotEnv(t, "\n# local overrides\nPQ_TEST_PORT=9090\nPQ_TEST_KEEP=fromfile\n")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("PQ_TEST_PORT"); got != "9090" {
		t.Fatalf("PQ_TEST_PORT=%q, want %q", got, "9090")
	}
	if got := os.Getenv("PQ_TEST_KEEP"); got != "already" {
		t.Fatalf("PQ_TEST_KEEP=%q, want %q", got, "already")
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("loadDotEnv on missing file: %v", err)
	}
}
