package utils

import (
	"errors"
	"testing"
	"time"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("s3cret", 42, "editor@print.test", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT returned error: %v", err)
	}
	claims, err := ValidateJWT("s3cret", token)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "editor@print.test" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWT_Rejects(t *testing.T) {
	good, _ := GenerateJWT("s3cret", 1, "a@b.c", time.Hour)
	expired, _ := GenerateJWT("s3cret", 1, "a@b.c", -time.Minute)

	cases := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", good},
		{"expired", "s3cret", expired},
		{"garbage", "s3cret", "not.a.token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ValidateJWT(tc.secret, tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
