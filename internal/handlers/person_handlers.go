package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/services"
)

// GetPersons handles listing registered persons
func GetPersons(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := parsePagination(r)

		persons, err := personService.List(page, pageSize)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, persons)
	}
}

// GetPerson handles retrieving a person by wallet
func GetPerson(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, err := personService.GetByWallet(chi.URLParam(r, "wallet"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, person)
	}
}

// GetPersonNFTs handles retrieving the items a wallet owns
func GetPersonNFTs(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nfts, err := personService.GetNFTs(chi.URLParam(r, "wallet"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, nfts)
	}
}

// GetPersonHistory handles retrieving a wallet's activity history
func GetPersonHistory(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := personService.GetHistory(chi.URLParam(r, "wallet"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, activities)
	}
}

// GetPersonOffers handles retrieving the open offers a wallet placed
func GetPersonOffers(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers, err := personService.GetOffers(chi.URLParam(r, "wallet"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, offers)
	}
}

// GetPersonCollections handles retrieving the collections a wallet
// created
func GetPersonCollections(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections, err := personService.GetCollections(chi.URLParam(r, "wallet"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, collections)
	}
}

// CreatePerson handles registering a person
func CreatePerson(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreatePersonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		person, err := personService.Create(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, person)
	}
}

// UpdatePerson handles patching a person's profile
func UpdatePerson(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdatePersonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		person, err := personService.Update(chi.URLParam(r, "wallet"), req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, person)
	}
}
