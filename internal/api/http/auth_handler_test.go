package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"avocado-hub-backend/internal/domain"
	"avocado-hub-backend/internal/service"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		s, r := newTestRouter()
		s.auth.On("Register", mock.Anything, "grace", "grace@example.com", "s3cret").
			Return(&domain.User{ID: 1, Username: "grace"}, nil)

		rec := doJSON(t, r, http.MethodPost, "/auth", `{"username":"grace","email":"grace@example.com","password":"s3cret"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "User registered successfully!", decodeMessage(t, rec))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		s, r := newTestRouter()

		rec := doJSON(t, r, http.MethodPost, "/auth", `{"username":"grace","email":"not-an-email","password":"s3cret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		s.auth.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	body := `{"email":"grace@example.com","password":"s3cret"}`

	t.Run("Success", func(t *testing.T) {
		s, r := newTestRouter()
		s.auth.On("Login", mock.Anything, "grace@example.com", "s3cret").
			Return(&domain.User{ID: 1, Username: "grace", Email: "grace@example.com"}, "signed-token", nil)

		rec := doJSON(t, r, http.MethodPost, "/login", body)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string       `json:"message"`
			User    *domain.User `json:"user"`
			Token   string       `json:"token"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "grace", resp.User.Username)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		s, r := newTestRouter()
		s.auth.On("Login", mock.Anything, "grace@example.com", "s3cret").
			Return(nil, "", service.ErrInvalidCredentials)

		rec := doJSON(t, r, http.MethodPost, "/login", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeMessage(t, rec))
	})
}
