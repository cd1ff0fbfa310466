package assistant

import (
	"errors"
	"net/http"

	"unisovet-console/internal/platform/httpx"
	"unisovet-console/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/assistant/messages", func(ar chi.Router) {
		ar.Get("/", transcriptHandler(svc))
		ar.Post("/", sendHandler(svc))
	})
}

type sendRequest struct {
	Content string `json:"content" validate:"required"`
}

func transcriptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, svc.Transcript(r.Context()))
	}
}

func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		reply, err := svc.Send(r.Context(), req.Content)
		if err != nil {
			switch {
			case errors.Is(err, ErrBusy):
				// há um envio em andamento; o cliente tenta de novo depois
				httpx.WriteError(w, http.StatusConflict, "assistant busy")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, reply)
	}
}
