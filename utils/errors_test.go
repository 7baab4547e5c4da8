package utils

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestResolveCustomError(t *testing.T) {
	status, msg := Resolve(Unauthenticated("Unauthorized"))
	if status != http.StatusUnauthorized || msg != "Unauthorized" {
		t.Fatalf("got %d %q", status, msg)
	}
}

func TestResolveWrappedSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errors.Wrap(ErrStorageUnavailable, "get favorites:u1"), http.StatusInternalServerError},
		{errors.Wrap(ErrValidationFailed, "restaurantId"), http.StatusBadRequest},
		{errors.Wrap(ErrNotFound, "restaurant:r9"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if status, _ := Resolve(tc.err); status != tc.status {
			t.Errorf("Resolve(%v) = %d, want %d", tc.err, status, tc.status)
		}
	}
}

func TestStorageUnavailableKeepsCause(t *testing.T) {
	cause := errors.Wrap(ErrStorageUnavailable, "dial tcp: timeout")
	err := StorageUnavailable(cause)

	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatal("expected StorageUnavailable to match ErrStorageUnavailable")
	}
	if err.Message == cause.Error() {
		t.Fatal("driver detail must not leak into the client message")
	}
}

func TestProviderRejectedMatchesSentinel(t *testing.T) {
	err := ProviderRejected("email already exists", errors.New("EMAIL_EXISTS"))
	if !errors.Is(err, ErrProviderRejected) {
		t.Fatal("expected ErrProviderRejected")
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", err.StatusCode)
	}
}

func TestNewCustomError(t *testing.T) {
	plain := NewCustomError(http.StatusTeapot, "short and stout")
	if status, msg := Resolve(plain); status != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("got %d %q", status, msg)
	}
	if plain.Unwrap() != nil {
		t.Fatal("expected no cause")
	}

	cases := []struct {
		err      *CustomError
		status   int
		sentinel error
	}{
		{Unauthenticated("Unauthorized"), http.StatusUnauthorized, ErrUnauthenticated},
		{ValidationFailed("bad"), http.StatusBadRequest, ErrValidationFailed},
		{ProviderRejected("no", nil), http.StatusBadRequest, ErrProviderRejected},
		{NotFound("gone"), http.StatusNotFound, ErrNotFound},
		{StorageUnavailable(nil), http.StatusInternalServerError, ErrStorageUnavailable},
	}
	for _, tc := range cases {
		if tc.err.StatusCode != tc.status || !errors.Is(tc.err, tc.sentinel) {
			t.Errorf("%q: got status %d, want %d matching %v", tc.err.Message, tc.err.StatusCode, tc.status, tc.sentinel)
		}
	}
}
