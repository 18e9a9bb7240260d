package export

import (
	"net/http"

	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/export", exportHandler(svc, log))
}

// exportHandler godoc
// @Summary Exportar datos
// @Description Todas las mascotas del usuario (orden de alta) con sus registros (por fecha ascendente), más un resumen de conteos.
// @Tags export
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Success 200 {object} Export
// @Router /export [get]
func exportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		out, err := svc.ForOwner(r.Context(), p.OwnerID)
		if err != nil {
			respond.Error(w, log, err, "export")
			return
		}
		respond.OK(w, out)
	}
}
