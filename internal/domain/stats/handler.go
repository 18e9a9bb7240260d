package stats

import (
	"net/http"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/stats/{petID}", petStatsHandler(svc, log))
}

type lastEventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	EventDate   string  `json:"event_date"`
	NextDueDate *string `json:"next_due_date"`
	SubType     string  `json:"sub_type"`
}

type weightPointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type statsResponse struct {
	PetID            string                `json:"pet_id"`
	PetName          string                `json:"pet_name"`
	Pet              pets.Response         `json:"pet"`
	TotalRecords     int                   `json:"total_records"`
	VaccinationCount int                   `json:"vaccination_count"`
	DewormingCount   int                   `json:"deworming_count"`
	LastVaccination  *lastEventResponse    `json:"last_vaccination"`
	LastDeworming    *lastEventResponse    `json:"last_deworming"`
	WeightHistory    []weightPointResponse `json:"weight_history"`
	CurrentWeight    *float64              `json:"current_weight"`
}

// petStatsHandler godoc
// @Summary Estadísticas de una mascota
// @Description Datos de la mascota (pet), conteos por tipo, última vacuna y desparasitación, historial de peso (ascendente) y peso actual.
// @Tags stats
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} statsResponse
// @Router /stats/{petID} [get]
func petStatsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		st, err := svc.ForPet(r.Context(), p.OwnerID, chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, log, err, "pet stats")
			return
		}
		respond.OK(w, toStatsResponse(st))
	}
}

func toStatsResponse(st Stats) statsResponse {
	out := statsResponse{
		PetID:            st.PetID,
		PetName:          st.PetName,
		Pet:              pets.NewResponse(st.Pet),
		TotalRecords:     st.TotalRecords,
		VaccinationCount: st.VaccinationCount,
		DewormingCount:   st.DewormingCount,
		LastVaccination:  toLastEvent(st.LastVaccination),
		LastDeworming:    toLastEvent(st.LastDeworming),
		WeightHistory:    make([]weightPointResponse, 0, len(st.WeightHistory)),
		CurrentWeight:    st.CurrentWeight,
	}
	for _, wp := range st.WeightHistory {
		out.WeightHistory = append(out.WeightHistory, weightPointResponse{Date: wp.Date, Value: wp.Value})
	}
	return out
}

func toLastEvent(rec *records.Record) *lastEventResponse {
	if rec == nil {
		return nil
	}
	return &lastEventResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		EventDate:   rec.EventDate,
		NextDueDate: rec.NextDueDate,
		SubType:     rec.SubType,
	}
}
