package pets

import (
	"net/http"
	"time"

	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, log))
		pr.Post("/", createPetHandler(svc, log))

		pr.Get("/{petID}", getPetHandler(svc, log))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

// Response es la forma pública de una mascota (sin owner_id); stats la reutiliza.
type Response struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Species       Species   `json:"species"`
	Breed         string    `json:"breed"`
	BirthDate     *string   `json:"birth_date"`
	Sex           Sex       `json:"sex"`
	CurrentWeight *float64  `json:"current_weight"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista las mascotas del usuario, la más reciente primero.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Success 200 {array} Response
// @Failure 500 {string} string "internal server error"
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		items, err := svc.List(r.Context(), p.OwnerID)
		if err != nil {
			respond.Error(w, log, err, "list pets")
			return
		}

		out := make([]Response, 0, len(items))
		for _, it := range items {
			out = append(out, NewResponse(it))
		}
		respond.OK(w, out)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea una mascota. species por defecto cat, sex por defecto male; birth_date en YYYY-MM-DD.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param payload body Input true "Datos de la mascota"
// @Success 200 {object} Response
// @Failure 400 {string} string "invalid json"
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}

		pet, err := svc.Create(r.Context(), p.OwnerID, in)
		if err != nil {
			respond.Error(w, log, err, "create pet")
			return
		}
		respond.OK(w, NewResponse(pet))
	}
}

// getPetHandler godoc
// @Summary Detalle de mascota
// @Description Devuelve la mascota si pertenece al usuario; si no, "pet not found".
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Response
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		pet, err := svc.Get(r.Context(), p.OwnerID, chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, log, err, "get pet")
			return
		}
		respond.OK(w, NewResponse(pet))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Reemplazo total de los campos (no es un merge parcial).
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param petID path string true "ID de la mascota"
// @Param payload body Input true "Datos completos de la mascota"
// @Success 200 {object} Response
// @Failure 400 {string} string "invalid json"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		var in Input
		if !respond.DecodeJSON(w, r, &in) {
			return
		}

		pet, err := svc.Update(r.Context(), p.OwnerID, chi.URLParam(r, "petID"), in)
		if err != nil {
			respond.Error(w, log, err, "update pet")
			return
		}
		respond.OK(w, NewResponse(pet))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y todos sus registros. Idempotente.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param petID path string true "ID de la mascota"
// @Success 200 {string} string "ok"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		if err := svc.Delete(r.Context(), p.OwnerID, chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, log, err, "delete pet")
			return
		}
		respond.OK(w, nil)
	}
}

func NewResponse(p Pet) Response {
	return Response{
		ID:            p.ID,
		Name:          p.Name,
		Species:       p.Species,
		Breed:         p.Breed,
		BirthDate:     p.BirthDate,
		Sex:           p.Sex,
		CurrentWeight: p.CurrentWeight,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
