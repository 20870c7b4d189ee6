package controllers

import (
	"net/http"

	"github.com/alquigo/alquigo-backend/api/responses"
	"github.com/alquigo/alquigo-backend/api/validators"
	"github.com/alquigo/alquigo-backend/internal/auth"
	cartsvc "github.com/alquigo/alquigo-backend/internal/cart"
	checkoutsvc "github.com/alquigo/alquigo-backend/internal/checkout"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/logger"
	"github.com/alquigo/alquigo-backend/pkg/types"
)

type checkoutRequest struct {
	Shipping      types.ShippingInfo `json:"shipping" validate:"required"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=credit_card debit_card pse cash_on_delivery"`
}

// Checkout finalizes the authenticated user's cart into a transaction.
func Checkout(svc checkoutsvc.Service, authSvc auth.Service, store cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || authSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := authSvc.SessionUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := hydrateCart(r, store, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), checkoutsvc.CheckoutRequest{
			User:          user,
			Lines:         c.Lines(),
			Shipping:      body.Shipping,
			PaymentMethod: body.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Clear(r.Context())
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
