package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/luminasalon/salon-manager/internal/config"
	domain "github.com/luminasalon/salon-manager/internal/domain/roster"
	"github.com/luminasalon/salon-manager/internal/httperr"
	"github.com/luminasalon/salon-manager/internal/httpresp"
	"github.com/luminasalon/salon-manager/internal/identity"
	"github.com/luminasalon/salon-manager/internal/schema"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	provider identity.Provider
	profiles domain.ProfileRepository
	cfg      *config.Config
}

func NewAuthHandler(provider identity.Provider, profiles domain.ProfileRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{provider: provider, profiles: profiles, cfg: cfg}
}

// Login verifies credentials against the identity service, resolves the
// local role and issues a signed session token.
func (h *AuthHandler) Login(c *gin.Context) {
	values, err := schema.ValuesFromRequest(c)
	if err != nil {
		httpresp.BadRequest(c, "Malformed request body.")
		return
	}

	in, errs := schema.ParseLogin(values)
	if !errs.Empty() {
		httpresp.Invalid(c, errs)
		return
	}

	user, err := h.provider.SignIn(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	profile, err := h.profiles.GetByID(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	if profile == nil {
		writeError(c, httperr.ErrBusiness("profile_not_found"))
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": profile.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, "", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  profile.Role,
		},
	})
}
