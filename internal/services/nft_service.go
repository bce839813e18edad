package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// NFTService handles item-level operations
type NFTService struct {
	collections CollectionStore
	nfts        NFTStore
	persons     PersonStore
}

// NewNFTService creates a new NFTService
func NewNFTService(collections CollectionStore, nfts NFTStore, persons PersonStore) *NFTService {
	return &NFTService{
		collections: collections,
		nfts:        nfts,
		persons:     persons,
	}
}

// GetDetail returns an NFT with its owner and creator resolved. A
// missing owner or creator profile degrades to null, never an error.
func (s *NFTService) GetDetail(collectionID, index string) (*models.NFTDetail, error) {
	if _, err := uuid.Parse(collectionID); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}

	nft, err := s.nfts.GetByCollectionAndIndex(collectionID, index)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}

	detail := &models.NFTDetail{NFT: *nft}
	if owner, err := s.persons.GetByWallet(nft.Owner); err == nil {
		detail.OwnerDetail = owner
	} else {
		zap.L().Warn("owner lookup failed", zap.String("wallet", nft.Owner), zap.Error(err))
	}
	if creator, err := s.persons.GetByWallet(nft.Creator); err == nil {
		detail.CreatorDetail = creator
	} else {
		zap.L().Warn("creator lookup failed", zap.String("wallet", nft.Creator), zap.Error(err))
	}

	return detail, nil
}

// GetAll returns NFTs matching params
func (s *NFTService) GetAll(params models.NFTParams) ([]models.NFT, error) {
	nfts, err := s.nfts.List(nftFilters(params), params.Page, params.PageSize)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return nfts, nil
}

// Create validates and stores a new NFT
func (s *NFTService) Create(req models.CreateItemRequest) (*models.NFT, error) {
	if _, err := uuid.Parse(req.CollectionID); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}
	if req.Index == "" {
		return nil, apperr.Validation("index is invalid or missing")
	}
	if req.Owner == "" {
		return nil, apperr.Validation("owner is invalid or missing")
	}

	collection, err := s.collections.GetByID(req.CollectionID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	existing, err := s.nfts.GetByCollectionAndIndex(req.CollectionID, req.Index)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if existing != nil {
		return nil, apperr.Validation("item index already taken in this collection")
	}

	properties := req.Properties
	if properties == nil {
		properties = []byte("{}")
	}

	nft := &models.NFT{
		CollectionID: req.CollectionID,
		Index:        req.Index,
		Owner:        req.Owner,
		Creator:      req.Creator,
		Name:         req.Name,
		Description:  req.Description,
		ArtURI:       req.ArtURI,
		Price:        req.Price,
		Status:       models.NFTStatusMinted,
		Properties:   properties,
	}

	if err := s.nfts.Create(nft); err != nil {
		return nil, apperr.Internal(err)
	}

	return nft, nil
}

// Update applies a patch to an NFT
func (s *NFTService) Update(id string, req models.UpdateItemRequest) (*models.NFT, error) {
	nft, err := s.nfts.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}

	if req.Name != nil {
		nft.Name = *req.Name
	}
	if req.Description != nil {
		nft.Description = *req.Description
	}
	if req.ArtURI != nil {
		nft.ArtURI = *req.ArtURI
	}
	if req.Price != nil {
		nft.Price = *req.Price
	}
	if req.Status != nil {
		nft.Status = models.NFTStatus(*req.Status)
	}

	if err := s.nfts.Update(nft); err != nil {
		return nil, apperr.Internal(err)
	}

	return nft, nil
}

// Delete removes an NFT
func (s *NFTService) Delete(id string) error {
	nft, err := s.nfts.GetByID(id)
	if err != nil {
		return apperr.Unavailable(err)
	}
	if nft == nil {
		return apperr.NotFound("item not found")
	}
	if err := s.nfts.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// nftFilters translates list params into typed store filters
func nftFilters(params models.NFTParams) []store.Filter {
	var filters []store.Filter
	if params.CollectionID != "" {
		filters = append(filters, store.Equality{Column: "collection_id", Value: params.CollectionID})
	}
	if params.Owner != "" {
		filters = append(filters, store.Equality{Column: "owner", Value: params.Owner})
	}
	if params.Creator != "" {
		filters = append(filters, store.Equality{Column: "creator", Value: params.Creator})
	}
	if params.Status != "" {
		filters = append(filters, store.Equality{Column: "status", Value: params.Status})
	}
	return filters
}
