package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/market"
	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// CollectionService assembles the denormalized collection summary views
// and owns collection CRUD. Metrics are computed per read from the raw
// NFT and activity records; nothing is cached.
type CollectionService struct {
	collections CollectionStore
	nfts        NFTStore
	activities  ActivityStore
	persons     PersonStore
	now         func() time.Time
}

// NewCollectionService creates a new CollectionService. A nil clock
// defaults to time.Now.
func NewCollectionService(collections CollectionStore, nfts NFTStore, activities ActivityStore, persons PersonStore, now func() time.Time) *CollectionService {
	if now == nil {
		now = time.Now
	}
	return &CollectionService{
		collections: collections,
		nfts:        nfts,
		activities:  activities,
		persons:     persons,
		now:         now,
	}
}

// buildSummary derives the summary for one collection. Related-record
// fetch failures degrade to empty sets and a missing creator degrades
// to a null creatorDetail; a single bad record never poisons a batch.
func (s *CollectionService) buildSummary(collection models.Collection) (models.CollectionSummary, []models.NFT, []models.Activity) {
	summary := models.CollectionSummary{Collection: collection}

	nfts, err := s.nfts.ListByCollection(collection.ID)
	if err != nil {
		zap.L().Warn("listing collection items failed",
			zap.String("collection", collection.ID),
			zap.Error(err))
		nfts = nil
	}

	activities, err := s.activities.ListByCollection(collection.ID)
	if err != nil {
		zap.L().Warn("listing collection activity failed",
			zap.String("collection", collection.ID),
			zap.Error(err))
		activities = nil
	}

	percent, today := market.TradeDelta(activities, s.now())
	summary.Volume = market.Volume(nfts)
	summary.FloorPrice = market.FloorPrice(activities)
	summary.H24 = today
	summary.H24Percent = percent
	summary.Owners = len(market.Owners(nfts))
	summary.Items = len(nfts)

	creator, err := s.persons.GetByWallet(collection.Creator)
	if err != nil {
		zap.L().Warn("creator lookup failed",
			zap.String("collection", collection.ID),
			zap.String("creator", collection.Creator),
			zap.Error(err))
		creator = nil
	}
	summary.CreatorDetail = creator

	return summary, nfts, activities
}

// summarizeAll builds summaries for a batch of collections. Each
// collection is summarized independently; output order matches input
// order.
func (s *CollectionService) summarizeAll(collections []models.Collection) []models.CollectionSummary {
	summaries := make([]models.CollectionSummary, len(collections))

	var wg sync.WaitGroup
	for i, collection := range collections {
		wg.Add(1)
		go func(i int, collection models.Collection) {
			defer wg.Done()
			summaries[i], _, _ = s.buildSummary(collection)
		}(i, collection)
	}
	wg.Wait()

	return summaries
}

// GetCollections returns summaries for collections matching params
func (s *CollectionService) GetCollections(params models.CollectionParams) ([]models.CollectionSummary, error) {
	collections, err := s.collections.List(collectionFilters(params), params.Page, params.PageSize)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return s.summarizeAll(collections), nil
}

// GetTopCollections returns the ten highest-volume collection summaries
func (s *CollectionService) GetTopCollections(params models.CollectionParams) ([]models.CollectionSummary, error) {
	collections, err := s.collections.List(collectionFilters(params), params.Page, params.PageSize)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return market.TopByVolume(s.summarizeAll(collections), 10), nil
}

// GetCollection returns one collection's summary with its items and
// activity embedded
func (s *CollectionService) GetCollection(id string) (*models.CollectionSummary, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}

	collection, err := s.collections.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	summary, nfts, activities := s.buildSummary(*collection)
	summary.NFTs = nfts
	summary.Activities = activities
	return &summary, nil
}

// GetCollectionByURL returns a collection summary looked up by url slug
func (s *CollectionService) GetCollectionByURL(url string) (*models.CollectionSummary, error) {
	collection, err := s.collections.GetByURL(url)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	summary, nfts, activities := s.buildSummary(*collection)
	summary.NFTs = nfts
	summary.Activities = activities
	return &summary, nil
}

// GetItems returns a collection with its NFTs embedded
func (s *CollectionService) GetItems(id string) (*models.CollectionSummary, error) {
	return s.GetCollection(id)
}

// GetOwners returns the distinct owners of a collection's NFTs.
// Wallets without a registered Person resolve to null entries, matching
// the wire contract of the owner view.
func (s *CollectionService) GetOwners(id string) ([]*models.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}

	collection, err := s.collections.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	nfts, err := s.nfts.ListByCollection(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}

	wallets := market.Owners(nfts)
	owners := make([]*models.Person, len(wallets))

	var wg sync.WaitGroup
	for i, wallet := range wallets {
		wg.Add(1)
		go func(i int, wallet string) {
			defer wg.Done()
			person, err := s.persons.GetByWallet(wallet)
			if err != nil {
				zap.L().Warn("owner lookup failed", zap.String("wallet", wallet), zap.Error(err))
				return
			}
			owners[i] = person
		}(i, wallet)
	}
	wg.Wait()

	return owners, nil
}

// Search runs the combined collection and item keyword search
func (s *CollectionService) Search(keyword string) (*models.SearchResult, error) {
	collections, err := s.collections.Search(keyword)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}

	items, err := s.nfts.Search(keyword)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}

	return &models.SearchResult{
		Collections: s.summarizeAll(collections),
		Items:       items,
	}, nil
}

// Create validates and stores a new collection
func (s *CollectionService) Create(req models.CreateCollectionRequest) (*models.CollectionSummary, error) {
	if _, err := uuid.Parse(req.CreatorID); err != nil {
		return nil, apperr.Validation("invalid creatorId")
	}

	creator, err := s.persons.GetByID(req.CreatorID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if creator == nil {
		return nil, apperr.Validation("creator address is invalid or missing")
	}

	if req.Name == "" {
		return nil, apperr.Validation("name is invalid or missing")
	}
	if req.Blockchain == "" {
		return nil, apperr.Validation("blockchain is invalid or missing")
	}
	if req.Category == "" {
		return nil, apperr.Validation("category is invalid or missing")
	}

	existing, err := s.collections.GetByName(req.Name)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if existing != nil {
		return nil, apperr.Validation("same collection name detected")
	}

	if req.URL == "" {
		return nil, apperr.Validation("collection url empty")
	}
	existing, err = s.collections.GetByURL(req.URL)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if existing != nil {
		return nil, apperr.Validation("same collection url detected")
	}

	// Shared contracts until the collection deploys its own
	var contract string
	switch req.Blockchain {
	case "ERC721":
		contract = models.DefaultContractERC721
	case "ERC1155":
		contract = models.DefaultContractERC1155
	}

	collection := &models.Collection{
		Name:           req.Name,
		Contract:       contract,
		URL:            req.URL,
		Creator:        strings.ToLower(creator.Wallet),
		CreatorEarning: req.CreatorEarning,
		Blockchain:     req.Blockchain,
		IsVerified:     false,
		IsExplicit:     req.IsExplicit,
		LogoURL:        req.LogoURL,
		FeaturedURL:    req.FeaturedURL,
		BannerURL:      req.BannerURL,
		Description:    req.Description,
		Category:       req.Category,
		Links:          []string{req.SiteURL, req.DiscordURL, req.InstagramURL, req.MediumURL, req.TelegramURL},
		Platform:       "ARC",
		Properties:     []byte("{}"),
		OfferStatus:    models.OfferStatusNone,
	}

	if err := s.collections.Create(collection); err != nil {
		return nil, apperr.Internal(err)
	}

	summary := models.CollectionSummary{Collection: *collection, CreatorDetail: creator}
	return &summary, nil
}

// Update applies a metadata patch to a collection
func (s *CollectionService) Update(id string, req models.UpdateCollectionRequest) (*models.Collection, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}

	collection, err := s.collections.GetByID(id)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.Category != nil {
		collection.Category = *req.Category
	}
	if req.LogoURL != nil {
		collection.LogoURL = *req.LogoURL
	}
	if req.FeaturedURL != nil {
		collection.FeaturedURL = *req.FeaturedURL
	}
	if req.BannerURL != nil {
		collection.BannerURL = *req.BannerURL
	}
	if req.Links != nil {
		collection.Links = req.Links
	}
	if req.IsExplicit != nil {
		collection.IsExplicit = *req.IsExplicit
	}
	if req.Properties != nil {
		collection.Properties = req.Properties
	}

	if err := s.collections.Update(collection); err != nil {
		return nil, apperr.Internal(err)
	}

	return collection, nil
}

// Delete removes a collection. Deletion is rejected while any NFT still
// references the collection.
func (s *CollectionService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("invalid collection id")
	}

	collection, err := s.collections.GetByID(id)
	if err != nil {
		return apperr.Unavailable(err)
	}
	if collection == nil {
		return apperr.NotFound("collection not found")
	}

	count, err := s.nfts.CountByCollection(id)
	if err != nil {
		return apperr.Unavailable(err)
	}
	if count > 0 {
		return apperr.Conflict("this collection has items")
	}

	if err := s.collections.Delete(id); err != nil {
		return apperr.Internal(err)
	}

	return nil
}

// collectionFilters translates list params into typed store filters
func collectionFilters(params models.CollectionParams) []store.Filter {
	var filters []store.Filter
	if params.Category != "" {
		filters = append(filters, store.Equality{Column: "category", Value: params.Category})
	}
	if params.Blockchain != "" {
		filters = append(filters, store.Equality{Column: "blockchain", Value: params.Blockchain})
	}
	if params.Platform != "" {
		filters = append(filters, store.Equality{Column: "platform", Value: params.Platform})
	}
	if params.Verified != nil {
		filters = append(filters, store.Equality{Column: "is_verified", Value: *params.Verified})
	}
	return filters
}
