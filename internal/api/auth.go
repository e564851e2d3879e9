package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"bazaar/internal/auth"
	"bazaar/internal/store"
)

// AuthHandler handles the password-flow token endpoints.
type AuthHandler struct {
	DB *sql.DB
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IssueToken handles POST /token. On success the access token is the raw
// membername; the response never reveals which credential check failed.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	member, err := store.GetMemberByName(r.Context(), h.DB, username)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if member == nil || !auth.VerifyPassword(password, member.HashedPassword) {
		slog.Warn("login failed", "remote", r.RemoteAddr)
		jsonError(w, http.StatusBadRequest, "Incorrect username or password")
		return
	}

	slog.Info("token issued", "member", member.Membername)
	jsonResponse(w, http.StatusOK, tokenResponse{
		AccessToken: member.Membername,
		TokenType:   "bearer",
	})
}

// Me handles GET /users/me. RequireMember has already resolved the token
// and rejected disabled accounts.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	member := MemberFrom(r.Context())
	if member == nil {
		jsonError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	jsonResponse(w, http.StatusOK, member)
}
