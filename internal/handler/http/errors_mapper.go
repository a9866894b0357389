package http

import (
	"errors"
	"net/http"

	"github.com/quotely/quote-service/internal/service"
	"github.com/quotely/quote-service/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDateOfBirth: http.StatusNotFound,

	store.ErrCustomerNotFound: http.StatusNotFound,
	store.ErrVehicleNotFound:  http.StatusNotFound,
	store.ErrCustomerMissing:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
