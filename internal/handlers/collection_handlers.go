package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/services"
)

// GetCollections handles listing collection summaries
func GetCollections(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parseCollectionParams(r)

		summaries, err := collectionService.GetCollections(params)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summaries)
	}
}

// GetTopCollections handles the top-collections leaderboard
func GetTopCollections(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parseCollectionParams(r)

		summaries, err := collectionService.GetTopCollections(params)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summaries)
	}
}

// GetCollection handles retrieving a single collection summary
func GetCollection(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := collectionService.GetCollection(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// GetCollectionByURL handles retrieving a collection by its url slug
func GetCollectionByURL(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := collectionService.GetCollectionByURL(chi.URLParam(r, "url"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// GetCollectionItems handles retrieving a collection with its items
func GetCollectionItems(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := collectionService.GetItems(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// GetCollectionOwners handles retrieving a collection's distinct owners
func GetCollectionOwners(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owners, err := collectionService.GetOwners(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, owners)
	}
}

// GetCollectionActivity handles retrieving a collection's activity log
func GetCollectionActivity(activityService *services.ActivityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := activityService.GetCollectionActivity(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, details)
	}
}

// CreateCollection handles creating a collection
func CreateCollection(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		summary, err := collectionService.Create(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, summary)
	}
}

// UpdateCollection handles patching collection metadata
func UpdateCollection(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateCollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		collection, err := collectionService.Update(chi.URLParam(r, "id"), req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, collection)
	}
}

// DeleteCollection handles deleting a collection
func DeleteCollection(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := collectionService.Delete(chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "collection deleted"})
	}
}

// Search handles the combined collection and item keyword search
func Search(collectionService *services.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("q")
		if keyword == "" {
			respondValidation(w, "search keyword required")
			return
		}

		result, err := collectionService.Search(keyword)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// Helper function to parse collection query parameters
func parseCollectionParams(r *http.Request) models.CollectionParams {
	params := models.CollectionParams{}

	params.Category = r.URL.Query().Get("category")
	params.Blockchain = r.URL.Query().Get("blockchain")
	params.Platform = r.URL.Query().Get("platform")

	if verifiedStr := r.URL.Query().Get("verified"); verifiedStr != "" {
		verified := verifiedStr == "true"
		params.Verified = &verified
	}

	params.Page, params.PageSize = parsePagination(r)

	return params
}

// parsePagination reads the shared page/page_size query parameters
func parsePagination(r *http.Request) (int, int) {
	page, pageSize := 0, 0

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
			page = n
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if n, err := strconv.Atoi(pageSizeStr); err == nil && n > 0 {
			pageSize = n
		}
	}

	return page, pageSize
}
