package utils

import (
	"testing"
	"time"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("hash equals the plain password")
	}
	if err := CompareHashAndPassword(hash, "S3cret!pass"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CompareHashAndPassword(hash, "wrong-pass"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestCreateAndVerifyJwtToken(t *testing.T) {
	key := GetJwtKey()
	token, err := CreateJwtToken(42, "owner@pets.dev", "Riley", "Stone", key, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	claims, err := VerifyToken(token, key)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.ID != 42 {
		t.Errorf("expected user id 42, got %d", claims.ID)
	}
	if claims.Email != "owner@pets.dev" {
		t.Errorf("expected email owner@pets.dev, got %s", claims.Email)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	key := GetJwtKey()
	token, err := CreateJwtToken(1, "a@b.io", "A", "B", key, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	if _, err := VerifyToken(token, key); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestVerifyTokenWrongKey(t *testing.T) {
	token, err := CreateJwtToken(1, "a@b.io", "A", "B", []byte("one-key"), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	if _, err := VerifyToken(token, []byte("another-key")); err == nil {
		t.Error("expected error for wrong signing key, got nil")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 50, 0},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{100, 50, 2},
		{101, 50, 3},
		{10, 0, 0},
		{10, -5, 0},
		{7, 3, 3},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}
