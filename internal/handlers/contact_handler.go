package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"contacts-api/internal/models"
	"contacts-api/internal/services"
	"contacts-api/internal/utils"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// respondWithError mapeia os erros de domínio para o status HTTP adequado.
func respondWithError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse(err.Error()))
	case errors.Is(err, models.ErrContactNotFound):
		models.RespondWithJSON(w, http.StatusNotFound, models.NewErrorResponse("Contact not found"))
	case errors.Is(err, models.ErrDuplicateEmail):
		models.RespondWithJSON(w, http.StatusConflict, models.NewErrorResponse("Email already registered"))
	default:
		models.RespondWithJSON(w, http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
	}
}

func contactID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// @Summary Create a contact
// @Description Create a new contact with a unique email
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body models.ContactCreateRequest true "Contact details"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /contacts/ [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogError("Erro ao decodificar requisição POST /contacts/: %v", err)
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse("Erro ao decodificar requisição: "+err.Error()))
		return
	}

	contact, err := h.service.CreateContact(&req)
	if err != nil {
		utils.LogError("Erro ao criar contato: %v", err)
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusCreated,
		models.NewSuccessResponse("Contact created successfully", contact))
}

// @Summary List all contacts
// @Description Get every contact in the directory
// @Tags contacts
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /contacts/ [get]
func (h *ContactHandler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.ListContacts()
	if err != nil {
		utils.LogError("Erro ao listar contatos: %v", err)
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contacts retrieved successfully", contacts))
}

// @Summary Get a contact
// @Description Get a single contact by id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := contactID(r)
	if err != nil {
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid contact id"))
		return
	}

	contact, err := h.service.GetContact(id)
	if err != nil {
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contact retrieved successfully", contact))
}

// @Summary Update a contact
// @Description Partially update a contact; absent fields keep their value
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body models.ContactUpdateRequest true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := contactID(r)
	if err != nil {
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid contact id"))
		return
	}

	var req models.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogError("Erro ao decodificar requisição PUT /contacts/%d: %v", id, err)
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse("Erro ao decodificar requisição: "+err.Error()))
		return
	}

	contact, err := h.service.UpdateContact(id, &req)
	if err != nil {
		utils.LogError("Erro ao atualizar contato %d: %v", id, err)
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contact updated successfully", contact))
}

// @Summary Delete a contact
// @Description Permanently remove a contact
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := contactID(r)
	if err != nil {
		models.RespondWithJSON(w, http.StatusBadRequest, models.NewErrorResponse("Invalid contact id"))
		return
	}

	if err := h.service.DeleteContact(id); err != nil {
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contact deleted successfully", nil))
}

// @Summary Search contacts
// @Description Case-insensitive substring search over first name, last name and email
// @Tags contacts
// @Produce json
// @Param query query string false "Search query"
// @Success 200 {object} models.APIResponse
// @Router /contacts/search/ [get]
func (h *ContactHandler) SearchContacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	contacts, err := h.service.SearchContacts(query)
	if err != nil {
		utils.LogError("Erro ao buscar contatos com consulta %q: %v", query, err)
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contacts retrieved successfully", contacts))
}

// @Summary Upcoming birthdays
// @Description Contacts whose birthday (month and day) falls within the next 7 days
// @Tags contacts
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /contacts/birthdays/ [get]
func (h *ContactHandler) UpcomingBirthdays(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.UpcomingBirthdays(services.DefaultBirthdayHorizonDays)
	if err != nil {
		utils.LogError("Erro ao buscar aniversários: %v", err)
		respondWithError(w, err)
		return
	}

	models.RespondWithJSON(w, http.StatusOK,
		models.NewSuccessResponse("Contacts retrieved successfully", contacts))
}
