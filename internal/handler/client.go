package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jfcamargo/cobros-engine/internal/domain"
	"github.com/jfcamargo/cobros-engine/internal/service"
	"github.com/jfcamargo/cobros-engine/pkg/response"
)

type ClientHandler struct {
	service   *service.ClientService
	validator *validator.Validate
}

func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.CreateClientRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	client, err := h.service.Create(r.Context(), &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "clientId")
	if !ok {
		return
	}

	client, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, clients)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "clientId")
	if !ok {
		return
	}

	var request domain.UpdateClientRequest
	if !decodeAndValidate(w, r, h.validator, &request) {
		return
	}

	client, err := h.service.Update(r.Context(), id, &request)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, client)
}
