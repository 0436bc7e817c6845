package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mindlog-backend/internal/auth"
	"github.com/heartmarshall/mindlog-backend/internal/domain"
)

// tokenIssuer defines the minimal interface needed by AuthHandler.
type tokenIssuer interface {
	GenerateAccessToken(userID string) (string, error)
}

// AuthHandler serves the login endpoint. Login is deliberately
// phrase-based: whoever runs the deployment shares one secret phrase,
// and a display name plus that phrase resolves to a stable pseudonymous
// user ID.
type AuthHandler struct {
	issuer       tokenIssuer
	secretPhrase string
	log          *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(issuer tokenIssuer, secretPhrase string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		issuer:       issuer,
		secretPhrase: secretPhrase,
		log:          logger.With("handler", "auth"),
	}
}

type loginRequest struct {
	DisplayName string `json:"display_name"`
	// SecretPhrase overrides the deployment phrase when set. A client
	// supplying its own phrase gets an identity keyed to that phrase,
	// matching how the journal rows were originally written.
	SecretPhrase string `json:"secret_phrase"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := domain.NormalizeName(req.DisplayName)
	if name == "" {
		writeError(w, http.StatusBadRequest, "display_name is required")
		return
	}

	phrase := req.SecretPhrase
	if phrase == "" {
		phrase = h.secretPhrase
	}

	userID := auth.DeriveUserID(req.DisplayName, phrase)
	token, err := h.issuer.GenerateAccessToken(userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "user logged in", slog.String("user_id", userID))

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		UserID:      userID,
		DisplayName: name,
	})
}
