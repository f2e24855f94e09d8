package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/models"
)

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		s, err := CurrentSession(c)
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID, "username": s.Username})
	})
	return r
}

func authRequest(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{ID: 42, Username: "alice"}

	t.Run("valid_access_token", func(t *testing.T) {
		token, err := GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := serve(setupAuthRouter(), authRequest("Bearer "+token))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseBody(t, rec)
		if body["user_id"].(float64) != 42 || body["username"] != "alice" {
			t.Errorf("unexpected session: %v", body)
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		rec := serve(setupAuthRouter(), authRequest(""))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "UNAUTHORIZED" {
			t.Errorf("expected UNAUTHORIZED, got %s", code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		rec := serve(setupAuthRouter(), authRequest("Token abc"))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		rec := serve(setupAuthRouter(), authRequest("Bearer not.a.jwt"))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("refresh_token_rejected", func(t *testing.T) {
		token, err := GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		rec := serve(setupAuthRouter(), authRequest("Bearer "+token))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		token, err := generateToken(user, tokenTypeAccess, -time.Minute)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		rec := serve(setupAuthRouter(), authRequest("Bearer "+token))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong_signing_key", func(t *testing.T) {
		claims := &JWTClaims{
			UserID:    42,
			TokenType: tokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		rec := serve(setupAuthRouter(), authRequest("Bearer "+token))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestValidateRefreshToken(t *testing.T) {
	user := &models.User{ID: 7, Username: "bob"}

	t.Run("valid", func(t *testing.T) {
		token, _ := GenerateRefreshToken(user)
		claims, err := ValidateRefreshToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != 7 || claims.Username != "bob" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("access_token_rejected", func(t *testing.T) {
		token, _ := GenerateAccessToken(user)
		if _, err := ValidateRefreshToken(token); err == nil {
			t.Fatal("expected error for access token")
		}
	})
}

func TestCurrentSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, err := CurrentSession(c); err == nil {
		t.Fatal("expected error without a session")
	}

	SetSession(c, Session{UserID: 3, Username: "carol"})
	s, err := CurrentSession(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.UserID != 3 || s.Username != "carol" {
		t.Errorf("unexpected session: %+v", s)
	}
}
