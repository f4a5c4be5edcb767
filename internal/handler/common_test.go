package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	customError "github.com/jfcamargo/cobros-engine/pkg/errors"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"client not found", customError.WrapClientNotFound("abc"), http.StatusNotFound},
		{"loan not found", customError.WrapLoanNotFound("abc"), http.StatusNotFound},
		{"susu not found", customError.WrapSusuNotFound("abc"), http.StatusNotFound},
		{"invalid terms", customError.WrapInvalidLoanTerms("bad principal"), http.StatusBadRequest},
		{"payment exceeds balance", customError.WrapPaymentExceedsBalance("100", "50"), http.StatusUnprocessableEntity},
		{"renewal below balance", customError.WrapRenewalBelowBalance("100", "200"), http.StatusUnprocessableEntity},
		{"loan not active", customError.WrapLoanNotActive("abc", "renewed"), http.StatusUnprocessableEntity},
		{"advance limit exceeded", customError.WrapAdvanceLimitExceeded("600", "500"), http.StatusUnprocessableEntity},
		{"database error", customError.WrapDatabaseError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeServiceError(recorder, tt.err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	type body struct {
		Name string `json:"name" validate:"required"`
	}
	v := validator.New()

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		recorder := httptest.NewRecorder()
		var dst body
		assert.True(t, decodeAndValidate(recorder, r, v, &dst))
		assert.Equal(t, "x", dst.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		recorder := httptest.NewRecorder()
		var dst body
		assert.False(t, decodeAndValidate(recorder, r, v, &dst))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		recorder := httptest.NewRecorder()
		var dst body
		assert.False(t, decodeAndValidate(recorder, r, v, &dst))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestPathUUID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		want := uuid.New()
		r := httptest.NewRequest(http.MethodGet, "/loans/"+want.String(), nil)
		r = mux.SetURLVars(r, map[string]string{"loanId": want.String()})
		recorder := httptest.NewRecorder()

		got, ok := pathUUID(recorder, r, "loanId")
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("garbage", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/loans/nope", nil)
		r = mux.SetURLVars(r, map[string]string{"loanId": "nope"})
		recorder := httptest.NewRecorder()

		_, ok := pathUUID(recorder, r, "loanId")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestQueryDate(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reports/daily?date=2025-06-12", nil)
		recorder := httptest.NewRecorder()

		day, ok := queryDate(recorder, r, "date", true)
		assert.True(t, ok)
		assert.Equal(t, 2025, day.Year())
		assert.Equal(t, 12, day.Day())
	})

	t.Run("missing required", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reports/daily", nil)
		recorder := httptest.NewRecorder()

		_, ok := queryDate(recorder, r, "date", true)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing optional defaults to now", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		recorder := httptest.NewRecorder()

		day, ok := queryDate(recorder, r, "date", false)
		assert.True(t, ok)
		assert.False(t, day.IsZero())
	})

	t.Run("bad format", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/reports/daily?date=12-06-2025", nil)
		recorder := httptest.NewRecorder()

		_, ok := queryDate(recorder, r, "date", true)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
