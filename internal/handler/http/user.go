package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maborges/travelmart/internal/models"
)

// UserService registers and authenticates customers
type UserService interface {
	// Register creates the customer account and returns an auth token
	Register(ctx context.Context, email, password string) (string, error)
	// Login verifies the credentials and returns an auth token
	Login(ctx context.Context, email, password string) (string, error)
}

// UserHandler represents HTTP handler for account requests
type UserHandler struct {
	svc UserService
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type credentialsRequest struct {
	Email    string `json:"correo"`
	Password string `json:"clave"`
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// RegisterUser registers a new customer and sets the auth cookie
// 200 — the account was created;
// 400 — malformed body or missing credentials;
// 409 — the email is already registered;
// 500 — internal server error.
func (uh *UserHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		token, err := uh.svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUserExists):
				http.Error(w, "user already exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}

// LoginUser authenticates a customer and sets the auth cookie
// 200 — successful authentication;
// 400 — malformed body;
// 401 — invalid credentials;
// 500 — internal server error.
func (uh *UserHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := uh.svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials):
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}
