// internal/app/features/members/handler.go
package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/campushq/societyhub/internal/app/features/errors"
	userstore "github.com/campushq/societyhub/internal/app/store/users"
	"github.com/campushq/societyhub/internal/app/system/gates"
	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/campushq/societyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler owns the member management handlers. Membership is the sign-in
// allow-list: password and Google sign-in both require a record created
// here by a board member.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Members Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// List handles GET /members.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireAuth(w, r); !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "members: list failed", err, "Unable to load members.")
		return
	}
	uierrors.JSON(w, http.StatusOK, users)
}

type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Create handles POST /members. Board only. New members start at zero
// points; the password is optional for Google-only accounts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if res := gates.RequireBoard(w, r); !res.OK {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "name and email are required")
		return
	}

	u := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "members: password hash failed", err, "Unable to create member.")
			return
		}
		u.PasswordHash = string(hash)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Users.Create(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateEmail):
			uierrors.Error(w, http.StatusConflict, "a member with that email already exists")
		case errors.Is(err, userstore.ErrBadRole):
			uierrors.Error(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.ErrLog.LogServerError(w, r, "members: create failed", err, "Unable to create member.")
		}
		return
	}
	uierrors.JSON(w, http.StatusCreated, created)
}

type profileRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	PhotoURL  string `json:"photo_url"`
}

// UpdateProfile handles PATCH /members/me. Display fields only; points
// and role cannot be edited through any profile path.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r)
	if !res.OK {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		uierrors.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		uierrors.Error(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.UpdateProfile(ctx, res.UserID, userstore.ProfileUpdate{
		Name:      req.Name,
		ShortName: req.ShortName,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.Error(w, http.StatusNotFound, "member record not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "members: profile update failed", err, "Unable to update profile.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
