package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

type SusuHandler struct {
	service   *service.SusuService
	validator *validator.Validate
}

func NewSusuHandler(service *service.SusuService) *SusuHandler {
	return &SusuHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *SusuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateSusuRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	susu, err := h.service.Create(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, susu)
}

func (h *SusuHandler) RegisterContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "susuId")
	if !ok {
		return
	}

	position, err := strconv.Atoi(mux.Vars(r)["position"])
	if err != nil || position < 1 {
		response.BadRequest(w, "invalid participant position", err)
		return
	}

	var request domain.CreateSusuPaymentRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	payment, err := h.service.RegisterContribution(r.Context(), id, position, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, payment)
}

func (h *SusuHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "susuId")
	if !ok {
		return
	}

	progress, err := h.service.Progress(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, progress)
}
