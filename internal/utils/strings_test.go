package utils_test

import (
	"testing"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/utils"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"guest@example.com", "  Ana@Hotel.TEST  ", "a@b.co"}
	for _, e := range valid {
		if !utils.IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false", e)
		}
	}

	invalid := []string{"", "no-at-sign", "two@@ats.com", "local@", "@domain.com", "a@bc"}
	for _, e := range invalid {
		if utils.IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true", e)
		}
	}
}

func TestIsValidOTP(t *testing.T) {
	valid := []string{"123456", "000000", " 654321 "}
	for _, c := range valid {
		if !utils.IsValidOTP(c) {
			t.Errorf("IsValidOTP(%q) = false", c)
		}
	}

	invalid := []string{"", "12345", "1234567", "12a456", "12 456", "abcdef"}
	for _, c := range invalid {
		if utils.IsValidOTP(c) {
			t.Errorf("IsValidOTP(%q) = true", c)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := utils.NormalizeEmail("  Guest@Example.COM "); got != "guest@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
