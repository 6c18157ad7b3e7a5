package service

import (
	"testing"

	"github.com/aiya-partner/partner-api/internal/constants"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:    "Somchai Jaidee",
		Email:       "Somchai@Example.com",
		Phone:       "081-234-5678",
		Code:        "som5678",
		Package:     constants.PackageTypeSingle,
		PDPAConsent: true,
	}
}

func TestValidateRegisterInputNormalize(t *testing.T) {
	got, verr := validateRegisterInput(validRegisterInput())
	if verr != nil {
		t.Fatalf("expected valid input, got field error: %s", verr.Field)
	}
	if got.Email != "somchai@example.com" {
		t.Fatalf("expected lowercased email, got %q", got.Email)
	}
	if got.Phone != "0812345678" {
		t.Fatalf("expected phone digits only, got %q", got.Phone)
	}
	if got.Code != "SOM5678" {
		t.Fatalf("expected uppercased code, got %q", got.Code)
	}
}

func TestValidateRegisterInputDefaultPackage(t *testing.T) {
	input := validRegisterInput()
	input.Package = ""

	got, verr := validateRegisterInput(input)
	if verr != nil {
		t.Fatalf("expected valid input, got field error: %s", verr.Field)
	}
	if got.Package != constants.PackageTypeSingle {
		t.Fatalf("expected default package single, got %q", got.Package)
	}
}

func TestValidateRegisterInputFieldErrors(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantField string
	}{
		{"empty name", func(in *RegisterInput) { in.FullName = "  " }, "name"},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"phone too short", func(in *RegisterInput) { in.Phone = "12345" }, "phone"},
		{"phone too long", func(in *RegisterInput) { in.Phone = "081234567890" }, "phone"},
		{"code too short", func(in *RegisterInput) { in.Code = "AB" }, "affiliateCode"},
		{"code too long", func(in *RegisterInput) { in.Code = "ABCDEFGHIJK" }, "affiliateCode"},
		{"code bad chars", func(in *RegisterInput) { in.Code = "SOM-5678" }, "affiliateCode"},
		{"unknown package", func(in *RegisterInput) { in.Package = "trio" }, "package"},
		{"missing consent", func(in *RegisterInput) { in.PDPAConsent = false }, "pdpaConsent"},
	}

	for _, tc := range cases {
		input := validRegisterInput()
		tc.mutate(&input)
		_, verr := validateRegisterInput(input)
		if verr == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if verr.Field != tc.wantField {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.wantField, verr.Field)
		}
	}
}

func TestValidCodeFormat(t *testing.T) {
	valid := []string{"SOM5678", "ABC", "A1B2C3D4E5"}
	for _, code := range valid {
		if !ValidCodeFormat(code) {
			t.Fatalf("expected %q valid", code)
		}
	}
	invalid := []string{"", "AB", "A1B2C3D4E5F", "som5678", "SOM 567", "SOM-567"}
	for _, code := range invalid {
		if ValidCodeFormat(code) {
			t.Fatalf("expected %q invalid", code)
		}
	}
}
