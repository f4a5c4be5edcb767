package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

type ReportHandler struct {
	service   *service.ReportService
	validator *validator.Validate
}

func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *ReportHandler) Daily(w http.ResponseWriter, r *http.Request) {
	day, ok := queryDate(w, r, "date", false)
	if !ok {
		return
	}

	report, err := h.service.Daily(r.Context(), day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *ReportHandler) Period(w http.ResponseWriter, r *http.Request) {
	from, ok := queryDate(w, r, "from", true)
	if !ok {
		return
	}
	to, ok := queryDate(w, r, "to", true)
	if !ok {
		return
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	report, err := h.service.Period(r.Context(), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *ReportHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateExpenseRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	expense, err := h.service.RegisterExpense(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, expense)
}

func (h *ReportHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	day, ok := queryDate(w, r, "date", false)
	if !ok {
		return
	}

	expenses, err := h.service.ListExpenses(r.Context(), day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, expenses)
}
