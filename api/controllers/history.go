package controllers

import (
	"net/http"

	"github.com/alquigo/alquigo-backend/api/responses"
	"github.com/alquigo/alquigo-backend/internal/contracts"
	"github.com/alquigo/alquigo-backend/internal/transactions"
	"github.com/alquigo/alquigo-backend/pkg/db/models"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/logger"
)

// UserTransactions lists the authenticated user's transactions, newest first.
func UserTransactions(svc transactions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transactions service unavailable"))
			return
		}

		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string][]models.Transaction{"transactions": records})
	}
}

// UserContracts lists the authenticated user's rental contracts, newest first.
func UserContracts(svc contracts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contracts service unavailable"))
			return
		}

		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string][]models.Contract{"contracts": records})
	}
}
