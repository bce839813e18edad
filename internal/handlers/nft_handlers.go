package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/services"
)

// GetNFTs handles listing NFTs
func GetNFTs(nftService *services.NFTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parseNFTParams(r)

		nfts, err := nftService.GetAll(params)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, nfts)
	}
}

// GetNFTDetail handles retrieving a single NFT with resolved owner and
// creator profiles
func GetNFTDetail(nftService *services.NFTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collectionID := chi.URLParam(r, "collectionId")
		index := chi.URLParam(r, "index")

		detail, err := nftService.GetDetail(collectionID, index)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}

// CreateNFT handles creating an NFT
func CreateNFT(nftService *services.NFTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		nft, err := nftService.Create(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, nft)
	}
}

// UpdateNFT handles patching an NFT
func UpdateNFT(nftService *services.NFTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		nft, err := nftService.Update(chi.URLParam(r, "id"), req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, nft)
	}
}

// DeleteNFT handles deleting an NFT
func DeleteNFT(nftService *services.NFTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := nftService.Delete(chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
	}
}

// Helper function to parse NFT query parameters
func parseNFTParams(r *http.Request) models.NFTParams {
	params := models.NFTParams{}

	params.CollectionID = r.URL.Query().Get("collection")
	params.Owner = r.URL.Query().Get("owner")
	params.Creator = r.URL.Query().Get("creator")
	params.Status = r.URL.Query().Get("status")

	params.Page, params.PageSize = parsePagination(r)

	return params
}
