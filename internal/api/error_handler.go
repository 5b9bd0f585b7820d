package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and French message.
//   - Folds router misses (404/405) into the canonical «Route non trouvée».
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Identifiants requis"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Identifiants incorrects"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Non autorisé"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Trop de tentatives"
	case errors.Is(err, domain.ErrInvalidTable):
		return http.StatusBadRequest, "Table invalide"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Non trouvé"
	case errors.Is(err, domain.ErrTitleRequired):
		return http.StatusBadRequest, "Le titre est requis"
	case errors.Is(err, domain.ErrEmptyUpdate):
		return http.StatusBadRequest, "Aucune donnée à mettre à jour"
	}

	// Echo's own errors: unmatched routes and method mismatches share one
	// message so the route table is not enumerable; bind failures keep 400.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, "Route non trouvée"
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, "Non autorisé"
		case http.StatusBadRequest:
			return http.StatusBadRequest, "Requête invalide"
		}
		return he.Code, http.StatusText(he.Code)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Erreur serveur interne"
}
