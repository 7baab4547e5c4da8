package middleware

import (
	"RestoFinder/models"
	"RestoFinder/services"
	"RestoFinder/store"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	provider, err := services.NewLocalIdentityProvider(store.NewMemoryStore(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	authService := services.NewAuthService(provider, zap.NewNop().Sugar())

	token, err := provider.GenerateToken(models.Account{ID: "user-1", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := newTestEngine(AuthMiddleware(authService), ok)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, r, tt.authorization)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if tt.wantStatus == http.StatusOK {
				if body["userId"] != "user-1" {
					t.Fatalf("expected userId user-1, got %q", body["userId"])
				}
			} else if body["error"] == "" {
				t.Fatal("expected error message in body")
			}
		})
	}
}
