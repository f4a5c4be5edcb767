package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

type SalaryHandler struct {
	service   *service.SalaryService
	validator *validator.Validate
}

func NewSalaryHandler(service *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *SalaryHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "collectorId")
	if !ok {
		return
	}

	config, err := h.service.GetConfig(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, config)
}

func (h *SalaryHandler) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "collectorId")
	if !ok {
		return
	}

	var request domain.UpsertSalaryConfigRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	config, err := h.service.UpsertConfig(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, config)
}

func (h *SalaryHandler) Commission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "collectorId")
	if !ok {
		return
	}

	from, ok := queryDate(w, r, "from", true)
	if !ok {
		return
	}
	to, ok := queryDate(w, r, "to", true)
	if !ok {
		return
	}

	report, err := h.service.Commission(r.Context(), id, from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *SalaryHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateSalaryPaymentRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	payment, err := h.service.CreatePayment(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, payment)
}

func (h *SalaryHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "collectorId")
	if !ok {
		return
	}

	payments, err := h.service.ListPayments(r.Context(), id, r.URL.Query().Get("period"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, payments)
}
