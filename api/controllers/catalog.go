package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alquigo/alquigo-backend/api/responses"
	"github.com/alquigo/alquigo-backend/internal/catalog"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/alquigo/alquigo-backend/pkg/logger"
)

// CatalogList returns the storefront products, optionally filtered by category.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := r.URL.Query().Get("category")
		products := svc.List(category)

		responses.WriteSuccess(w, map[string]any{
			"products":   products,
			"categories": svc.Categories(),
		})
	}
}

// CatalogGet returns a single product by its identifier.
func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, err := svc.GetByID(productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
