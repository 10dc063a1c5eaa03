package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Store & Persistence Errors
var (
	ErrStoreQuery      = errors.New("store query failed")
	ErrStoreConnection = errors.New("store connection failed")
)

// NewStoreError wraps a failed store call with details about the operation.
// Well-known driver failures are reclassified so the caller sees the right
// status: duplicate key -> 409, not found -> 404, connection -> 503.
func NewStoreError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"), strings.Contains(errStr, "UNIQUE constraint"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s %w", entity, ErrConflict),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"), strings.Contains(errStr, "FOREIGN KEY constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStoreConnection,
				Details:    "Unable to reach the store; the request may be retried",
				Cause:      cause,
			}
		}
	}

	// Generic store error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreQuery) || errors.Is(err, ErrStoreConnection)
}
