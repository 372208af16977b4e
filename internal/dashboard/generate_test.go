package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderMissingEnv(t *testing.T) {
	os.Unsetenv("GREPTIMEDB_DATASOURCE_UID")
	if err := Render(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing env vars")
	}
}

func TestRenderSuccess(t *testing.T) {
	t.Setenv("GREPTIMEDB_DATASOURCE_UID", "uid1")

	dir := t.TempDir()
	if err := Render(dir); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "grafana-dashboard.json"))
	if err != nil {
		t.Fatalf("read dashboard: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "uid1") {
		t.Fatalf("datasource uid not rendered")
	}
	if !strings.Contains(out, "policy_reports") || !strings.Contains(out, "policy_outcomes") {
		t.Fatalf("default table names not rendered: %s", out)
	}
}

func TestRenderTableOverride(t *testing.T) {
	t.Setenv("GREPTIMEDB_DATASOURCE_UID", "uid1")
	t.Setenv("OUTCOME_TABLE", "custom_outcomes")

	dir := t.TempDir()
	if err := Render(dir); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "grafana-dashboard.json"))
	if err != nil {
		t.Fatalf("read dashboard: %v", err)
	}
	if !strings.Contains(string(b), "custom_outcomes") {
		t.Fatalf("table override not rendered")
	}
}
