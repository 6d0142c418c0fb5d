package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"magasin/internal/domain"
	"magasin/internal/repository"
	"magasin/internal/service"

	"github.com/gorilla/mux"
)

type AdherentHandler struct {
	adherentService *service.AdherentService
}

func NewAdherentHandler(adherentService *service.AdherentService) *AdherentHandler {
	return &AdherentHandler{adherentService: adherentService}
}

type createAdherentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type listAdherentsResponse struct {
	Adherents   []domain.Adherent `json:"adherents"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int64             `json:"currentPage"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *AdherentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdherentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	adherent, err := h.adherentService.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		// Uniqueness violations land here too and stay a 500, the
		// status existing clients expect for a duplicate email.
		log.Printf("Error creating adherent: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating adherent", err)
		return
	}

	respondJSON(w, http.StatusCreated, adherent)
}

func (h *AdherentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.adherentService.List(r.Context(), parseListQuery(r))
	if err != nil {
		log.Printf("Error fetching adherents: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching adherents", err)
		return
	}

	respondJSON(w, http.StatusOK, listAdherentsResponse{
		Adherents:   list.Adherents,
		TotalPages:  list.TotalPages,
		CurrentPage: list.Page,
	})
}

func (h *AdherentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	adherent, err := h.adherentService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAdherentNotFound) {
			respondError(w, http.StatusNotFound, "Adherent not found", nil)
			return
		}
		log.Printf("Error fetching adherent %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error fetching adherent", err)
		return
	}

	respondJSON(w, http.StatusOK, adherent)
}

func (h *AdherentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update domain.AdherentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	adherent, err := h.adherentService.Update(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, domain.ErrAdherentNotFound) {
			respondError(w, http.StatusNotFound, "Adherent not found", nil)
			return
		}
		log.Printf("Error updating adherent %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error updating adherent", err)
		return
	}

	respondJSON(w, http.StatusOK, adherent)
}

func (h *AdherentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.adherentService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAdherentNotFound) {
			respondError(w, http.StatusNotFound, "Adherent not found", nil)
			return
		}
		log.Printf("Error deleting adherent %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Error deleting adherent", err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Adherent deleted successfully"})
}

// parseListQuery reads page, limit and search from the query string.
// Absent or non-numeric values are left zero; the service layer applies
// the defaults (page 1, limit 2).
func parseListQuery(r *http.Request) repository.ListQuery {
	var query repository.ListQuery
	query.Search = r.URL.Query().Get("search")

	if page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64); err == nil {
		query.Page = page
	}
	if limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil {
		query.Limit = limit
	}

	return query
}
