package http

import (
	"net/http"
	"strconv"

	"aula/pkg/config"
	apperrors "aula/pkg/errors"
)

// ExtractLimit reads the optional limit query parameter and clamps it to the
// configured list bounds.
func ExtractLimit(r *http.Request) (int, error) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}
	return config.NormalizeListLimit(limit), nil
}
