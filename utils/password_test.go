package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateRandomToken(t *testing.T) {
	tok := GenerateRandomToken(6)
	if len(tok) != 6 {
		t.Errorf("length = %d, want 6", len(tok))
	}
	for _, c := range tok {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			t.Errorf("unexpected character %q", c)
		}
	}

	if GenerateRandomToken(16) == GenerateRandomToken(16) {
		t.Error("two generated tokens match")
	}
}
