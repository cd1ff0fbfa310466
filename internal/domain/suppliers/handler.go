package suppliers

import (
	"errors"
	"net/http"

	"unisovet-console/internal/platform/httpx"
	"unisovet-console/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/suppliers", func(sr chi.Router) {
		sr.Get("/", listSuppliersHandler(svc))
		sr.Post("/", createSupplierHandler(svc))
		sr.Get("/{supplierID}", getSupplierHandler(svc))
		sr.Put("/{supplierID}", updateSupplierHandler(svc))
		sr.Delete("/{supplierID}", deleteSupplierHandler(svc))
	})
}

type supplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

func listSuppliersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func createSupplierHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supplierRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		sup, err := svc.Create(r.Context(), Input{
			Name:          req.Name,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			Email:         req.Email,
		})
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, sup)
	}
}

func getSupplierHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sup, err := svc.GetByID(r.Context(), chi.URLParam(r, "supplierID"))
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, sup)
	}
}

func updateSupplierHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req supplierRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		sup, err := svc.Update(r.Context(), chi.URLParam(r, "supplierID"), Input{
			Name:          req.Name,
			ContactPerson: req.ContactPerson,
			Phone:         req.Phone,
			Email:         req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "supplier not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, sup)
	}
}

func deleteSupplierHandler(svc *Service) http.HandlerFunc {
	// Excluir fornecedor não propaga para o estoque: itens que o referenciam
	// passam a resolver como "Desconhecido".
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "supplierID")); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
