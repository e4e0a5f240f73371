package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/mailadmin/shared/errors"
)

// parseIdParam reads a positive integer url parameter.
func parseIdParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Validation("ID inválido", map[string]string{name: "debe ser un número entero positivo"})
	}
	return id, nil
}
