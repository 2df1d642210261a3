package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minjaeyoo/shopcore-backend/api/responses"
	"github.com/minjaeyoo/shopcore-backend/api/validators"
	"github.com/minjaeyoo/shopcore-backend/internal/shop"
	pkgerrors "github.com/minjaeyoo/shopcore-backend/pkg/errors"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

// CartFetch returns the current cart lines and totals.
func CartFetch(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartResponse(svc.CartLines()))
	}
}

// CartAddItem adds a product to the cart.
func CartAddItem(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var payload AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddToCart(payload.ProductID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartResponse(svc.CartLines()))
	}
}

// CartChangeQuantity adjusts a line's quantity by a signed delta.
func CartChangeQuantity(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productID")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload ChangeQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ChangeQuantity(productID, payload.Delta); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(svc.CartLines()))
	}
}

// CartRemoveItem deletes a line and restores its stock.
func CartRemoveItem(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productID")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if err := svc.RemoveFromCart(productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(svc.CartLines()))
	}
}

// CartReset drops every line without restoring stock.
func CartReset(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}
		svc.Reset()
		responses.WriteSuccess(w, newCartResponse(svc.CartLines()))
	}
}

// CartPricing runs the pricing engine over the current cart.
func CartPricing(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}
		responses.WriteSuccess(w, newPricingResponse(svc.ComputePricing()))
	}
}

// CartLoyalty computes the loyalty-point award for the current cart.
func CartLoyalty(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}
		responses.WriteSuccess(w, newLoyaltyResponse(svc.ComputeLoyalty()))
	}
}
