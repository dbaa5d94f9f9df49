package analysis

import (
	"testing"

	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

func TestUnmarshalStrictAcceptsKnownFields(t *testing.T) {
	raw := []byte(`{"company_name":"Acme Cloudworks","industry":"technology"}`)

	var p BusinessProfile
	if err := UnmarshalStrict(raw, &p); err != nil {
		t.Fatalf("UnmarshalStrict failed: %v", err)
	}
	if p.CompanyName != "Acme Cloudworks" {
		t.Errorf("company_name = %q", p.CompanyName)
	}
}

// A misspelled field must be rejected as a validation error naming the
// offending key, never decoded into a zero-valued profile.
func TestUnmarshalStrictRejectsUnknownField(t *testing.T) {
	raw := []byte(`{"company_name":"Acme Cloudworks","anual_revenue":5000000}`)

	var p BusinessProfile
	err := UnmarshalStrict(raw, &p)
	if err == nil {
		t.Fatal("unknown field accepted")
	}

	var ve *errors.ValidationError
	if !errors.AsValidationError(err, &ve) {
		t.Fatalf("error is not a validation error: %v", err)
	}
	if len(ve.Violations) != 1 || ve.Violations[0].Field != "anual_revenue" {
		t.Errorf("violations = %+v, want one for anual_revenue", ve.Violations)
	}
}

func TestUnmarshalStrictRejectsNestedUnknownField(t *testing.T) {
	raw := []byte(`{"checklist":{"finacial_records":true}}`)

	var p BusinessProfile
	err := UnmarshalStrict(raw, &p)

	var ve *errors.ValidationError
	if !errors.AsValidationError(err, &ve) {
		t.Fatalf("error is not a validation error: %v", err)
	}
	if len(ve.Violations) != 1 || ve.Violations[0].Field != "finacial_records" {
		t.Errorf("violations = %+v, want one for finacial_records", ve.Violations)
	}
}

func TestUnmarshalStrictPassesThroughSyntaxErrors(t *testing.T) {
	var p BusinessProfile
	err := UnmarshalStrict([]byte(`{not json`), &p)
	if err == nil {
		t.Fatal("malformed JSON accepted")
	}
	var ve *errors.ValidationError
	if errors.AsValidationError(err, &ve) {
		t.Errorf("syntax error misreported as validation error: %v", err)
	}
}
