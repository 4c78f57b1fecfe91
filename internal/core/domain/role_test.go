package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", r, err)
		}
		if got != r {
			t.Fatalf("expected %q, got %q", r, got)
		}
	}

	for _, raw := range []string{"", "Petugas_Keuangan", "superuser", "finance_officer"} {
		if _, err := ParseRole(raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseRole(%q): expected ErrValidation, got %v", raw, err)
		}
	}
}

func TestClaimsHasRole_ExactMatchOnly(t *testing.T) {
	officer := Claims{UserID: "u1", Role: RoleFinanceOfficer}
	if !officer.HasRole(RoleFinanceOfficer) {
		t.Fatalf("finance officer should satisfy its own role")
	}
	if officer.HasRole(RoleAdmin) {
		t.Fatalf("finance officer must not satisfy admin")
	}

	admin := Claims{UserID: "u2", Role: RoleAdmin}
	if admin.HasRole(RoleFinanceOfficer) {
		t.Fatalf("admin must not satisfy petugas_keuangan")
	}

	if (Claims{}).HasRole(RoleFinanceOfficer) {
		t.Fatalf("empty claims must not satisfy any role")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("PiutangPelanggan")
	if err.Error() != "PiutangPelanggan not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("NotFoundError should match ErrRecordNotFound")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Fatalf("NotFoundError must not match ErrUserNotFound")
	}
}
