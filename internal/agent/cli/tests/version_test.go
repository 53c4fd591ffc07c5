package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-dashboard-auth/internal/agent/cli"
)

func TestNewVersionCmd_PrintsBuildInfo(t *testing.T) {
	cmd := cli.NewVersionCmd("1.2.3", "2026-01-16")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "version=1.2.3") {
		t.Fatalf("expected version in output, got %q", got)
	}
	if !strings.Contains(got, "build_date=2026-01-16") {
		t.Fatalf("expected build date in output, got %q", got)
	}
}
