package inventory

import (
	"errors"
	"net/http"
	"time"

	"unisovet-console/internal/platform/httpx"
	"unisovet-console/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/inventory", func(ir chi.Router) {
		ir.Get("/", listItemsHandler(svc))
		ir.Post("/", createItemHandler(svc))
		ir.Get("/{itemID}", getItemHandler(svc))
		ir.Put("/{itemID}", updateItemHandler(svc))
		ir.Delete("/{itemID}", deleteItemHandler(svc))

		// Ação "contactar fornecedor" da tela de estoque.
		ir.Get("/{itemID}/supplier", itemSupplierHandler(svc))
	})
}

type itemRequest struct {
	Name              string `json:"name" validate:"required"`
	Category          string `json:"category" validate:"required"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	Unit              string `json:"unit" validate:"required"`
	SupplierID        string `json:"supplier_id" validate:"required"`
	LastPurchaseDate  string `json:"last_purchase_date" validate:"required"` // YYYY-MM-DD
	LowStockThreshold int    `json:"low_stock_threshold" validate:"min=0"`
}

type itemResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          Category  `json:"category"`
	Quantity          int       `json:"quantity"`
	Unit              Unit      `json:"unit"`
	SupplierID        string    `json:"supplier_id"`
	SupplierName      string    `json:"supplier_name"`
	LastPurchaseDate  time.Time `json:"last_purchase_date"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LowStock          bool      `json:"low_stock"`
}

func (req itemRequest) toInput() (Input, error) {
	d, err := time.Parse("2006-01-02", req.LastPurchaseDate)
	if err != nil {
		return Input{}, errors.New("last_purchase_date must be YYYY-MM-DD")
	}
	return Input{
		Name:              req.Name,
		Category:          Category(req.Category),
		Quantity:          req.Quantity,
		Unit:              Unit(req.Unit),
		SupplierID:        req.SupplierID,
		LastPurchaseDate:  d,
		LowStockThreshold: req.LowStockThreshold,
	}, nil
}

func toItemResponse(item Item, supplierName string) itemResponse {
	return itemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		SupplierID:        item.SupplierID,
		SupplierName:      supplierName,
		LastPurchaseDate:  item.LastPurchaseDate,
		LowStockThreshold: item.LowStockThreshold,
		LowStock:          item.LowStock(),
	}
}

func listItemsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, toItemResponse(item, svc.SupplierName(r.Context(), item.SupplierID)))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
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

		item, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toItemResponse(item, svc.SupplierName(r.Context(), item.SupplierID)))
	}
}

func getItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetByID(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			httpx.WriteError(w, http.StatusNotFound, "item not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toItemResponse(item, svc.SupplierName(r.Context(), item.SupplierID)))
	}
}

func updateItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
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

		item, err := svc.Update(r.Context(), chi.URLParam(r, "itemID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusNotFound, "item not found")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toItemResponse(item, svc.SupplierName(r.Context(), item.SupplierID)))
	}
}

func deleteItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func itemSupplierHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sup, err := svc.Supplier(r.Context(), chi.URLParam(r, "itemID"))
		if err != nil {
			// item inexistente ou fornecedor órfão
			httpx.WriteError(w, http.StatusNotFound, "supplier not found")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, sup)
	}
}
