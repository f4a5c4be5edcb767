package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

type LoanHandler struct {
	service   *service.LoanService
	validator *validator.Validate
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateLoanRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	loan, err := h.service.CreateLoan(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "loanId")
	if !ok {
		return
	}

	loan, err := h.service.GetLoan(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, loan)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	var collectorID *uuid.UUID
	if raw := r.URL.Query().Get("collector"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "invalid collector filter", err)
			return
		}
		collectorID = &id
	}

	loans, err := h.service.ListLoans(r.Context(), collectorID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, loans)
}

func (h *LoanHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "loanId")
	if !ok {
		return
	}

	var request domain.CreatePaymentRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	payment, err := h.service.RegisterPayment(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, payment)
}

func (h *LoanHandler) RegisterTransfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "loanId")
	if !ok {
		return
	}

	var request domain.CreateTransferRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	transfer, err := h.service.RegisterTransfer(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, transfer)
}

func (h *LoanHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "loanId")
	if !ok {
		return
	}

	var request domain.RenewLoanRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	renewal, err := h.service.RenewLoan(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, renewal)
}
