package reminders

import (
	"net/http"
	"strconv"
	"strings"

	"pet-health/internal/domain/records"
	"pet-health/internal/middleware"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc, log))
		rr.Get("/upcoming", upcomingRemindersHandler(svc, log))
	})
}

type reminderResponse struct {
	RecordID      string       `json:"record_id"`
	PetID         string       `json:"pet_id"`
	PetName       string       `json:"pet_name"`
	PetSpecies    string       `json:"pet_species"`
	Type          records.Type `json:"type"`
	Name          string       `json:"name"`
	SubType       string       `json:"sub_type"`
	EventDate     string       `json:"event_date"`
	NextDueDate   string       `json:"next_due_date"`
	Note          string       `json:"note"`
	DaysRemaining int          `json:"days_remaining"`
	Status        Status       `json:"status"`
	Badge         string       `json:"badge"`
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Description Todos los registros con próxima fecha, el más urgente primero, con estado (overdue/upcoming/safe) y días restantes.
// @Tags reminders
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Success 200 {array} reminderResponse
// @Router /reminders [get]
func listRemindersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		items, err := svc.All(r.Context(), p.OwnerID)
		if err != nil {
			respond.Error(w, log, err, "list reminders")
			return
		}
		respond.OK(w, toReminderResponses(items))
	}
}

// upcomingRemindersHandler godoc
// @Summary Recordatorios próximos
// @Description Recordatorios con próxima fecha hasta hoy + days (incluye vencidos). days inválido o <= 0 usa el default (14).
// @Tags reminders
// @Produce json
// @Param Authorization header string false "Bearer <token de sesión>"
// @Param openId query string false "openId del usuario"
// @Param days query int false "Horizonte en días"
// @Success 200 {array} reminderResponse
// @Router /reminders/upcoming [get]
func upcomingRemindersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			respond.Fail(w, "missing user identifier")
			return
		}

		// Atoi fallido deja 0 y el servicio aplica el default.
		days, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("days")))

		items, err := svc.Upcoming(r.Context(), p.OwnerID, days)
		if err != nil {
			respond.Error(w, log, err, "upcoming reminders")
			return
		}
		respond.OK(w, toReminderResponses(items))
	}
}

func toReminderResponses(items []Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(items))
	for _, it := range items {
		out = append(out, reminderResponse{
			RecordID:      it.RecordID,
			PetID:         it.PetID,
			PetName:       it.PetName,
			PetSpecies:    it.PetSpecies,
			Type:          it.Type,
			Name:          it.Name,
			SubType:       it.SubType,
			EventDate:     it.EventDate,
			NextDueDate:   it.NextDueDate,
			Note:          it.Note,
			DaysRemaining: it.DaysRemaining,
			Status:        it.Status,
			Badge:         it.Badge,
		})
	}
	return out
}
