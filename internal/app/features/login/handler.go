// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/app/system/auth"
	"github.com/campushq/societyhub/internal/app/system/normalize"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /auth/login with an email/password JSON body. On
// success it sets the session cookie and returns the user's identity.
// Unknown email and wrong password both return the same 401 so the
// endpoint does not reveal which emails exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.ErrLog.LogServerError(w, r, "login: user lookup failed", err, "Unable to sign in right now.")
		return
	}

	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		uierrors.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	su := auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := auth.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "login: session write failed", err, "Unable to sign in right now.")
		return
	}

	h.Log.Info("user signed in", zap.String("email", user.Email), zap.String("role", user.Role))
	uierrors.JSON(w, http.StatusOK, loginResponse{Name: user.Name, Email: user.Email, Role: user.Role})
}
