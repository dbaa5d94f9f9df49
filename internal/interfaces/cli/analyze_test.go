package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domain "github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
)

func writeProfileFile(t *testing.T) string {
	t.Helper()
	profile := map[string]interface{}{
		"company_name":           "Acme Cloudworks",
		"industry":               "technology",
		"company_age_years":      8,
		"employee_count":         25,
		"annual_revenue":         5_000_000,
		"profit_margin_pct":      15,
		"revenue_growth_pct":     15,
		"business_model":         "saas",
		"customer_concentration": "diversified",
		"market_position":        "strong",
		"desired_timeframe":      "3_5_years",
		"checklist": map[string]bool{
			"documented_processes":  true,
			"financial_records":     true,
			"legal_compliance":      true,
			"intellectual_property": true,
		},
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAnalyzeCommandJSONOutput(t *testing.T) {
	out, err := runCommand(t, "analyze", "--profile", writeProfileFile(t))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output not a JSON report: %v", err)
	}
	if report.CompanyName != "Acme Cloudworks" || len(report.Scores) != 6 {
		t.Errorf("report = %+v", report)
	}
	if report.Metadata.SourcePath != domain.SourceLocal {
		t.Errorf("source path = %s, want local", report.Metadata.SourcePath)
	}
}

func TestAnalyzeCommandTextOutput(t *testing.T) {
	out, err := runCommand(t, "analyze", "--profile", writeProfileFile(t), "--output", "text")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	for _, want := range []string{"Exit-readiness analysis", "Acme Cloudworks", "DIMENSION", "Valuation:"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeCommandRequiresProfile(t *testing.T) {
	if _, err := runCommand(t, "analyze"); err == nil {
		t.Fatal("analyze without --profile succeeded")
	}
}

func TestAnalyzeCommandRejectsInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"company_name":""}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := runCommand(t, "analyze", "--profile", path); err == nil {
		t.Fatal("analyze accepted an invalid profile")
	}
}

// A misspelled field in the profile file must fail the command instead of
// silently analyzing a zero value.
func TestAnalyzeCommandRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	profile := `{"company_name":"Acme Cloudworks","anual_revenue":5000000}`
	if err := os.WriteFile(path, []byte(profile), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := runCommand(t, "analyze", "--profile", path)
	if err == nil {
		t.Fatal("analyze accepted a profile with an unknown field")
	}
	if !strings.Contains(err.Error(), "anual_revenue") {
		t.Errorf("error does not name the unknown field: %v", err)
	}
}

func TestAnalyzeCommandRemoteRequiresEndpoint(t *testing.T) {
	if _, err := runCommand(t, "analyze", "--profile", writeProfileFile(t), "--remote"); err == nil {
		t.Fatal("--remote without --endpoint succeeded")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "exitready") {
		t.Errorf("version output = %q", out)
	}
}
