package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

const dateLayout = "2006-01-02"

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. Writes the error response itself and reports whether the
// handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return false
	}
	if err := v.Struct(dst); err != nil {
		response.BadRequest(w, "validation failed", err)
		return false
	}
	return true
}

// pathUUID extracts a UUID path variable, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, "invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryDate reads a YYYY-MM-DD query parameter, defaulting to today when
// absent.
func queryDate(w http.ResponseWriter, r *http.Request, name string, required bool) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			response.BadRequest(w, name+" query parameter is required", nil)
			return time.Time{}, false
		}
		return time.Now(), true
	}

	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		response.BadRequest(w, name+" must be YYYY-MM-DD", err)
		return time.Time{}, false
	}
	return day, true
}

// writeServiceError maps business error codes onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var bizErr *customError.BusinessError
	if !errors.As(err, &bizErr) {
		response.InternalServerError(w, "unexpected error", err)
		return
	}

	switch bizErr.Code {
	case customError.ErrCodeClientNotFound,
		customError.ErrCodeLoanNotFound,
		customError.ErrCodeSalaryConfigNotFound,
		customError.ErrCodeSusuNotFound:
		response.NotFound(w, bizErr.Message)
	case customError.ErrCodeInvalidLoanTerms,
		customError.ErrCodeInvalidClassifierInput:
		response.BadRequest(w, bizErr.Message, bizErr.Err)
	case customError.ErrCodeLoanNotActive,
		customError.ErrCodePaymentExceedsBalance,
		customError.ErrCodeRenewalBelowBalance,
		customError.ErrCodeSalaryConfigInactive,
		customError.ErrCodeAdvanceBelowMinimum,
		customError.ErrCodeAdvanceLimitExceeded:
		response.UnprocessableEntity(w, bizErr.Message, bizErr.Err)
	default:
		response.InternalServerError(w, bizErr.Message, bizErr.Err)
	}
}
