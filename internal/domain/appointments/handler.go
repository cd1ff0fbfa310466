package appointments

import (
	"errors"
	"net/http"
	"time"

	"unisovet-console/internal/platform/httpx"
	"unisovet-console/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
		ar.Patch("/{appointmentID}/status", updateStatusHandler(svc))
	})
}

type appointmentRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	PetID    string `json:"pet_id" validate:"required"`
	Date     string `json:"date" validate:"required"` // RFC3339
	Reason   string `json:"reason" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type appointmentResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	PetID      string    `json:"pet_id"`
	PetName    string    `json:"pet_name"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
	Status     Status    `json:"status"`
}

func (req appointmentRequest) toInput() (Input, error) {
	d, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return Input{}, errors.New("date must be RFC3339")
	}
	return Input{
		ClientID: req.ClientID,
		PetID:    req.PetID,
		Date:     d,
		Reason:   req.Reason,
		Status:   Status(req.Status),
	}, nil
}

func toAppointmentResponse(r *http.Request, svc *Service, a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID,
		ClientID:   a.ClientID,
		ClientName: svc.ClientName(r.Context(), a.ClientID),
		PetID:      a.PetID,
		PetName:    svc.PetName(r.Context(), a.PetID),
		Date:       a.Date,
		Reason:     a.Reason,
		Status:     a.Status,
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(r, svc, a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in, err := req.toInput()
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(r, svc, a))
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "appointment not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(r, svc, a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in, err := req.toInput()
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "appointmentID"), in)
		if err != nil {
			writeServiceError(w, err, "appointment not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(r, svc, a))
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appointmentID"), Status(req.Status))
		if err != nil {
			writeServiceError(w, err, "appointment not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(r, svc, a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "appointmentID")); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
