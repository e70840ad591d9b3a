package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookline/internal/common"
	"golang.org/x/crypto/bcrypt"
)

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("test-jwt-secret")

	token, err := GenerateToken("admin", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	username, err := GetUsernameFromToken(token, secret)
	if err != nil {
		t.Fatalf("GetUsernameFromToken: %v", err)
	}
	if username != "admin" {
		t.Fatalf("want username admin, got %q", username)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("admin", []byte("secret-one"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = GetUsernameFromToken(token, []byte("secret-two"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestToken_Expired(t *testing.T) {
	secret := []byte("test-jwt-secret")

	token, err := GenerateToken("admin", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = GetUsernameFromToken(token, secret)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestToken_Garbage(t *testing.T) {
	_, err := GetUsernameFromToken("not-a-token", []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	if !CheckPassword(string(hash), "s3cret") {
		t.Errorf("expected matching password to verify")
	}
	if CheckPassword(string(hash), "wrong") {
		t.Errorf("expected mismatching password to fail")
	}
	if CheckPassword("", "anything") {
		t.Errorf("empty hash must never match")
	}
}
