package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	msgs, ok := he.Message.([]string)
	if !ok {
		t.Fatalf("expected []string message, got %T", he.Message)
	}
	return msgs
}

func TestValidator_CollectsAllViolationsInFieldOrder(t *testing.T) {
	v := NewValidator()

	req := createOwnerRequest{
		// first_name missing, email malformed, phone too short
		LastName: "Rivera",
		Email:    "not-an-email",
		Phone:    "123",
	}

	msgs := validationMessages(t, v.Validate(&req))
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "firstname") {
		t.Fatalf("expected first violation to be first_name, got %q", msgs[0])
	}
	if !strings.Contains(msgs[1], "email") {
		t.Fatalf("expected second violation to be email, got %q", msgs[1])
	}
	if !strings.Contains(msgs[2], "phone") {
		t.Fatalf("expected third violation to be phone, got %q", msgs[2])
	}
}

func TestValidator_ValidPayloadPasses(t *testing.T) {
	v := NewValidator()

	req := createPetRequest{
		OwnerID: "o1",
		Name:    "Milo",
		Species: "cat",
		Sex:     "male",
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_EnumViolation(t *testing.T) {
	v := NewValidator()

	req := createPetRequest{
		OwnerID: "o1",
		Name:    "Milo",
		Species: "lizard",
		Sex:     "male",
	}

	msgs := validationMessages(t, v.Validate(&req))
	if len(msgs) != 1 || !strings.Contains(msgs[0], "one of") {
		t.Fatalf("expected a oneof message, got %v", msgs)
	}
}

func TestValidator_PartialUpdateOmittedFieldsPass(t *testing.T) {
	v := NewValidator()

	// Every field absent: the partial schema must accept this.
	if err := v.Validate(&updatePetRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_PartialUpdateKeepsOriginalConstraint(t *testing.T) {
	v := NewValidator()

	bad := -2.5
	msgs := validationMessages(t, v.Validate(&updatePetRequest{WeightKg: &bad}))
	if len(msgs) < 1 {
		t.Fatalf("expected at least one message, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "weightkg") {
		t.Fatalf("expected weight violation, got %v", msgs)
	}
}
