// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinerec/internal/catalog"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/validation"
)

// writeCatalogError maps an error from catalog.NewMovie, catalog.NewUser or
// a Catalog add to an HTTP status and error code.
func writeCatalogError(rw *ResponseWriter, err error) {
	var ce *catalog.Error
	if !errors.As(err, &ce) {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("unexpected catalog error")
		rw.InternalError("An unexpected error occurred")
		return
	}

	details := map[string]interface{}{
		"reason": catalog.Reason(ce.Kind),
		"value":  ce.Value,
	}

	switch {
	case catalog.IsValidationError(err):
		rw.ValidationError(ce.Error(), details)
	case errors.Is(err, catalog.ErrDuplicateMovieFingerprint), errors.Is(err, catalog.ErrDuplicateUserID):
		rw.Conflict(ce.Error(), details)
	case errors.Is(err, catalog.ErrUnknownLikedMovie):
		rw.UnknownReference(ce.Error(), details)
	default:
		rw.InternalError(ce.Error())
	}
}

// writeRequestValidationError writes the 400 response for a request body that
// fails its struct tags.
func writeRequestValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}
