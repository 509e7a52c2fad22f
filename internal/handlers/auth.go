package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/pliu/hiver/internal/store"
	"github.com/pliu/hiver/internal/store/sqlstore"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Store store.Store
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Missing username or password")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(w, "register", err)
		return
	}

	if err := h.Store.CreateUser(creds.Username, string(hash)); err != nil {
		if errors.Is(err, sqlstore.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		internalError(w, "register", err)
		return
	}

	writeStatus(w, http.StatusCreated, "Registered")
}

// Login verifies the credentials and nothing more; no session or token is
// issued.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Missing username or password")
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	user, err := h.Store.GetUserByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, sqlstore.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		internalError(w, "login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeStatus(w, http.StatusOK, "Logged in")
}
