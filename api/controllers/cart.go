package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/alquigo/alquigo-backend/api/middleware"
	"github.com/alquigo/alquigo-backend/api/responses"
	"github.com/alquigo/alquigo-backend/api/validators"
	cartsvc "github.com/alquigo/alquigo-backend/internal/cart"
	"github.com/alquigo/alquigo-backend/internal/catalog"
	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Mode      string `json:"mode" validate:"required"`
	Duration  int    `json:"duration" validate:"omitempty,min=1"`
	Unit      string `json:"unit" validate:"omitempty"`
}

type setQuantityRequest struct {
	Mode     string `json:"mode" validate:"required"`
	Quantity int    `json:"quantity"`
}

type setDurationRequest struct {
	Duration int `json:"duration" validate:"required,min=1"`
}

type cartView struct {
	Items      []cartsvc.Line  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func newCartView(c *cartsvc.RentalCart) cartView {
	return cartView{
		Items:      c.Lines(),
		TotalItems: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}

func hydrateCart(r *http.Request, store cartsvc.Store, logg *logger.Logger) (*cartsvc.RentalCart, error) {
	ownerID := middleware.UserIDFromContext(r.Context())
	if ownerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	return cartsvc.New(r.Context(), ownerID, store, logg)
}

// CartFetch returns the authenticated user's cart snapshot.
func CartFetch(store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartAddItem resolves the product and adds a sale or rental line.
func CartAddItem(store cartsvc.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body addCartItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode, err := enums.ParseCartMode(body.Mode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart mode"))
			return
		}

		unit := enums.DurationUnitDays
		if body.Unit != "" {
			unit, err = enums.ParseDurationUnit(body.Unit)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInvalidUnit, err, "invalid duration unit"))
				return
			}
		}

		duration := body.Duration
		if mode == enums.CartModeRental && duration == 0 {
			duration = 1
		}

		product, err := catalogSvc.GetByID(body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := c.AddItem(r.Context(), product, mode, duration, unit); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(c))
	}
}

// CartSetQuantity updates the quantity of an existing line. Zero removes it.
func CartSetQuantity(store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body setQuantityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mode, err := enums.ParseCartMode(body.Mode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart mode"))
			return
		}

		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.SetQuantity(r.Context(), chi.URLParam(r, "productId"), mode, body.Quantity)
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartSetDuration updates the rental duration of an existing rental line.
func CartSetDuration(store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body setDurationRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := c.SetRentalDuration(r.Context(), chi.URLParam(r, "productId"), body.Duration); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartRemoveItem drops every line for the product, sale and rental alike.
func CartRemoveItem(store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.RemoveItem(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartClear empties the cart.
func CartClear(store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(c))
	}
}
