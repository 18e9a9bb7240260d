package records

import (
	"net/http"
	"time"

	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(svc, log))
		rr.Post("/", createRecordHandler(svc, log))
		rr.Delete("/{recordID}", deleteRecordHandler(svc, log))
	})
}

type recordResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"pet_id"`
	Type        Type      `json:"type"`
	Name        string    `json:"name"`
	EventDate   string    `json:"event_date"`
	NextDueDate *string   `json:"next_due_date"`
	SubType     string    `json:"sub_type"`
	WeightValue *float64  `json:"weight_value"`
	DietAmount  *float64  `json:"diet_amount"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// createRecordRequest acepta también los nombres de campo de los clientes viejos
// (record_name, record_date, next_date); los nombres nuevos tienen prioridad.
type createRecordRequest struct {
	Input
	RecordName string `json:"record_name"`
	RecordDate string `json:"record_date"`
	NextDate   string `json:"next_date"`
}

func (req createRecordRequest) input() Input {
	in := req.Input
	if in.Name == "" {
		in.Name = req.RecordName
	}
	if in.EventDate == "" {
		in.EventDate = req.RecordDate
	}
	if in.NextDueDate == "" {
		in.NextDueDate = req.NextDate
	}
	return in
}

// listRecordsHandler godoc
// @Summary Listar registros
// @Description Lista los registros del usuario, más recientes primero (event_date desc, luego created_at desc). Filtros opcionales por mascota y tipo.
// @Tags records
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param pet_id query string false "ID de la mascota"
// @Param type query string false "vaccination, deworming, weight o diet"
// @Success 200 {array} recordResponse
// @Router /records [get]
func listRecordsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		q := r.URL.Query()
		petID := q.Get("pet_id")
		if petID == "" {
			petID = q.Get("petId")
		}

		items, err := svc.List(r.Context(), p.OwnerID, petID, q.Get("type"))
		if err != nil {
			respond.Error(w, log, err, "list records")
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toRecordResponse(it))
		}
		respond.OK(w, out)
	}
}

// createRecordHandler godoc
// @Summary Crear registro
// @Description Crea un registro de salud. event_date por defecto es hoy. Un registro de peso con weight_value actualiza el peso actual de la mascota. Acepta record_name, record_date y next_date como alias.
// @Tags records
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param payload body createRecordRequest true "Datos del registro"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json"
// @Router /records [post]
func createRecordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		var req createRecordRequest
		if !respond.DecodeJSON(w, r, &req) {
			return
		}

		rec, err := svc.Create(r.Context(), p.OwnerID, req.input())
		if err != nil {
			respond.Error(w, log, err, "create record")
			return
		}
		respond.OK(w, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Borrar registro
// @Description Borra un registro del usuario. Idempotente.
// @Tags records
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param recordID path string true "ID del registro"
// @Success 200 {string} string "ok"
// @Router /records/{recordID} [delete]
func deleteRecordHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		if err := svc.Delete(r.Context(), p.OwnerID, chi.URLParam(r, "recordID")); err != nil {
			respond.Error(w, log, err, "delete record")
			return
		}
		respond.OK(w, nil)
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		PetID:       rec.PetID,
		Type:        rec.Type,
		Name:        rec.Name,
		EventDate:   rec.EventDate,
		NextDueDate: rec.NextDueDate,
		SubType:     rec.SubType,
		WeightValue: rec.WeightValue,
		DietAmount:  rec.DietAmount,
		Note:        rec.Note,
		CreatedAt:   rec.CreatedAt,
	}
}
