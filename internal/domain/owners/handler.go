package owners

import (
	"net/http"
	"time"

	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"
	"pet-health/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterLoginRoute va fuera del grupo con gateway de identidad: es el único
// endpoint que no recibe openId.
func RegisterLoginRoute(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/user/login", loginHandler(svc, log))
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/user/profile", func(ur chi.Router) {
		ur.Get("/", getProfileHandler(svc, log))
		ur.Put("/", updateProfileHandler(svc, log))
	})
}

type loginRequest struct {
	Code string `json:"code" validate:"required"`
}

type loginResponse struct {
	OpenID    string     `json:"openId"`
	UserID    string     `json:"userId"`
	Nickname  string     `json:"nickname"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type updateProfileRequest struct {
	Nickname string `json:"nickname"`
}

type profileResponse struct {
	OpenID    string    `json:"openId"`
	UserID    string    `json:"userId"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

// loginHandler godoc
// @Summary Login del mini-programa
// @Description Canjea el `code` de wx.login por el openId, crea el usuario la primera vez y emite un token de sesión. En modo dev (o sin appid configurado, nunca en producción) el openId es `dev_<code>`.
// @Tags user
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Código de login"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "internal server error"
// @Router /user/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !respond.DecodeJSON(w, r, &req) {
			return
		}
		if err := validation.Struct(req); err != nil {
			respond.Fail(w, err.Error())
			return
		}

		res, err := svc.Login(r.Context(), req.Code)
		if err != nil {
			respond.Error(w, log, err, "user login")
			return
		}

		out := loginResponse{
			OpenID:   res.Owner.OpenID,
			UserID:   res.Owner.ID,
			Nickname: res.Owner.Nickname,
			Token:    res.Token,
		}
		if !res.ExpiresAt.IsZero() {
			exp := res.ExpiresAt.UTC()
			out.ExpiresAt = &exp
		}
		respond.OK(w, out)
	}
}

// getProfileHandler godoc
// @Summary Perfil del usuario
// @Description Devuelve el usuario resuelto por el gateway (openId por Bearer, query, header X-Open-ID o body).
// @Tags user
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Success 200 {object} profileResponse
// @Router /user/profile [get]
func getProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		o, err := svc.GetByID(r.Context(), p.OwnerID)
		if err != nil {
			respond.Error(w, log, err, "get profile")
			return
		}
		respond.OK(w, toProfileResponse(o))
	}
}

// updateProfileHandler godoc
// @Summary Actualizar perfil
// @Description Actualiza el nickname (máx. 64 caracteres; vacío lo limpia).
// @Tags user
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param payload body updateProfileRequest true "Perfil"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json"
// @Router /user/profile [put]
func updateProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		var req updateProfileRequest
		if !respond.DecodeJSON(w, r, &req) {
			return
		}

		o, err := svc.UpdateProfile(r.Context(), p.OwnerID, req.Nickname)
		if err != nil {
			respond.Error(w, log, err, "update profile")
			return
		}
		respond.OK(w, toProfileResponse(o))
	}
}

func toProfileResponse(o Owner) profileResponse {
	return profileResponse{
		OpenID:    o.OpenID,
		UserID:    o.ID,
		Nickname:  o.Nickname,
		CreatedAt: o.CreatedAt,
	}
}
