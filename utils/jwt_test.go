package utils

import (
	"os"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "U042", "Jordan", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.SlackID != "U042" {
		t.Errorf("SlackID = %q, want U042", claims.SlackID)
	}
	if claims.Name != "Jordan" {
		t.Errorf("Name = %q, want Jordan", claims.Name)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
