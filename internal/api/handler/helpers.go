package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"devfolio/internal/common"

	"github.com/go-chi/chi/v5"
)

func urlID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid id", common.ErrBadRequest)
	}
	return id, nil
}
