package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/services"
)

// GetActivities handles listing activities with NFT context
func GetActivities(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parseActivityParams(r)

		details, err := activityService.GetAll(params)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, details)
	}
}

// ListForSale handles putting an item up for sale
func ListForSale(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ListForSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.ListForSale(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// MakeOffer handles placing an offer on an item
func MakeOffer(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.MakeOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.MakeOffer(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// MakeCollectionOffer handles placing a collection-wide offer
func MakeCollectionOffer(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CollectionOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.MakeCollectionOffer(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// ApproveOffer handles accepting an item offer
func ApproveOffer(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ApproveOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.ApproveOffer(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// Transfer handles a direct item transfer between wallets
func Transfer(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.Transfer(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// CancelActivity handles withdrawing a listing or offer
func CancelActivity(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CancelActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		activity, err := activityService.Cancel(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

// DeleteActivity handles removing an activity record
func DeleteActivity(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := activityService.DeleteActivity(chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "activity deleted"})
	}
}

// Helper function to parse activity query parameters
func parseActivityParams(r *http.Request) models.ActivityParams {
	params := models.ActivityParams{}

	params.CollectionID = r.URL.Query().Get("collection")
	params.Wallet = r.URL.Query().Get("wallet")
	params.Type = r.URL.Query().Get("type")

	params.Page, params.PageSize = parsePagination(r)

	return params
}
