package services

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// OfferMailer notifies an item owner that an offer arrived. A nil
// mailer disables notifications.
type OfferMailer interface {
	SendOfferNotification(to, itemName string, price float64) error
}

// ActivityService owns the trade flow (listings, offers, sales,
// transfers) and the activity read views. Every operation appends an
// immutable activity record; the log is never rewritten.
type ActivityService struct {
	collections CollectionStore
	nfts        NFTStore
	activities  ActivityStore
	persons     PersonStore
	publisher   ActivityPublisher
	mailer      OfferMailer
}

// NewActivityService creates a new ActivityService
func NewActivityService(collections CollectionStore, nfts NFTStore, activities ActivityStore, persons PersonStore, publisher ActivityPublisher, mailer OfferMailer) *ActivityService {
	return &ActivityService{
		collections: collections,
		nfts:        nfts,
		activities:  activities,
		persons:     persons,
		publisher:   publisher,
		mailer:      mailer,
	}
}

// GetCollectionActivity returns a collection's activity log with NFT
// display context attached to each record. Output order matches the
// stored log order.
func (s *ActivityService) GetCollectionActivity(collectionID string) ([]models.ActivityDetail, error) {
	if _, err := uuid.Parse(collectionID); err != nil {
		return nil, apperr.Validation("invalid collection id")
	}

	collection, err := s.collections.GetByID(collectionID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	activities, err := s.activities.ListByCollection(collectionID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}

	return s.resolveDetails(activities), nil
}

// GetAll returns activities matching params, with NFT context attached
func (s *ActivityService) GetAll(params models.ActivityParams) ([]models.ActivityDetail, error) {
	activities, err := s.activities.List(activityFilters(params), params.Page, params.PageSize)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return s.resolveDetails(activities), nil
}

// resolveDetails attaches NFT context per record. Records are resolved
// independently; a missing NFT yields null context fields, and a
// collection-wide offer carries the whole collection's projected items.
func (s *ActivityService) resolveDetails(activities []models.Activity) []models.ActivityDetail {
	details := make([]models.ActivityDetail, len(activities))

	var wg sync.WaitGroup
	for i, activity := range activities {
		wg.Add(1)
		go func(i int, activity models.Activity) {
			defer wg.Done()
			details[i] = models.ActivityDetail{
				Activity:  activity,
				NFTObject: s.nftContext(activity),
			}
		}(i, activity)
	}
	wg.Wait()

	return details
}

func (s *ActivityService) nftContext(activity models.Activity) interface{} {
	if activity.Type == models.ActivityTypeOfferCollection {
		nfts, err := s.nfts.ListByCollection(activity.CollectionID)
		if err != nil {
			zap.L().Warn("resolving collection offer context failed",
				zap.String("activity", activity.ID),
				zap.Error(err))
			return []models.NFTContext{}
		}
		contexts := make([]models.NFTContext, len(nfts))
		for i := range nfts {
			contexts[i] = models.NFTContext{ArtURI: &nfts[i].ArtURI, Name: &nfts[i].Name}
		}
		return contexts
	}

	if activity.NFTIndex == nil {
		return models.NFTContext{}
	}

	nft, err := s.nfts.GetByCollectionAndIndex(activity.CollectionID, *activity.NFTIndex)
	if err != nil {
		zap.L().Warn("resolving activity context failed",
			zap.String("activity", activity.ID),
			zap.Error(err))
		nft = nil
	}
	if nft == nil {
		return models.NFTContext{}
	}
	return models.NFTContext{ArtURI: &nft.ArtURI, Name: &nft.Name}
}

// ListForSale puts an NFT up for sale and records the listing
func (s *ActivityService) ListForSale(req models.ListForSaleRequest) (*models.Activity, error) {
	if req.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}

	nft, err := s.nfts.GetByCollectionAndIndex(req.CollectionID, req.Index)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}
	if nft.Owner != req.Seller {
		return nil, apperr.Validation("seller does not own this item")
	}

	nft.Price = req.Price
	nft.Status = models.NFTStatusForSale
	if err := s.nfts.Update(nft); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.record(models.Activity{
		CollectionID: req.CollectionID,
		NFTIndex:     &nft.Index,
		Type:         models.ActivityTypeList,
		Price:        req.Price,
		From:         req.Seller,
	})
}

// MakeOffer records an offer on a single NFT and notifies its owner
func (s *ActivityService) MakeOffer(req models.MakeOfferRequest) (*models.Activity, error) {
	if req.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}

	nft, err := s.nfts.GetByCollectionAndIndex(req.CollectionID, req.Index)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}
	if nft.Owner == req.From {
		return nil, apperr.Validation("cannot offer on own item")
	}

	activity, err := s.record(models.Activity{
		CollectionID: req.CollectionID,
		NFTIndex:     &nft.Index,
		Type:         models.ActivityTypeOffer,
		Price:        req.Price,
		From:         req.From,
		To:           nft.Owner,
	})
	if err != nil {
		return nil, err
	}

	s.notifyOwner(nft, req.Price)
	return activity, nil
}

// MakeCollectionOffer records a collection-wide offer
func (s *ActivityService) MakeCollectionOffer(req models.CollectionOfferRequest) (*models.Activity, error) {
	if req.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}

	collection, err := s.collections.GetByID(req.CollectionID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if collection == nil {
		return nil, apperr.NotFound("collection not found")
	}

	collection.OfferStatus = models.OfferStatusActive
	if err := s.collections.Update(collection); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.record(models.Activity{
		CollectionID: req.CollectionID,
		Type:         models.ActivityTypeOfferCollection,
		Price:        req.Price,
		From:         req.From,
	})
}

// ApproveOffer accepts an item offer: ownership moves to the offerer
// and a sale is recorded
func (s *ActivityService) ApproveOffer(req models.ApproveOfferRequest) (*models.Activity, error) {
	offer, err := s.activities.GetByID(req.ActivityID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if offer == nil {
		return nil, apperr.NotFound("offer not found")
	}
	if offer.Type != models.ActivityTypeOffer {
		return nil, apperr.Validation("activity is not an item offer")
	}
	if offer.NFTIndex == nil {
		return nil, apperr.Validation("offer has no item reference")
	}

	nft, err := s.nfts.GetByCollectionAndIndex(offer.CollectionID, *offer.NFTIndex)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}
	if nft.Owner != req.Seller {
		return nil, apperr.Validation("seller does not own this item")
	}

	nft.Owner = offer.From
	nft.Price = offer.Price
	nft.Status = models.NFTStatusSold
	if err := s.nfts.Update(nft); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.record(models.Activity{
		CollectionID: offer.CollectionID,
		NFTIndex:     offer.NFTIndex,
		Type:         models.ActivityTypeSale,
		Price:        offer.Price,
		From:         req.Seller,
		To:           offer.From,
	})
}

// Transfer moves an NFT between wallets without a sale
func (s *ActivityService) Transfer(req models.TransferRequest) (*models.Activity, error) {
	nft, err := s.nfts.GetByCollectionAndIndex(req.CollectionID, req.Index)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if nft == nil {
		return nil, apperr.NotFound("item not found")
	}
	if nft.Owner != req.From {
		return nil, apperr.Validation("sender does not own this item")
	}
	if req.To == "" {
		return nil, apperr.Validation("recipient wallet missing")
	}

	nft.Owner = req.To
	nft.Status = models.NFTStatusTransferred
	if err := s.nfts.Update(nft); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.record(models.Activity{
		CollectionID: req.CollectionID,
		NFTIndex:     &nft.Index,
		Type:         models.ActivityTypeTransfer,
		From:         req.From,
		To:           req.To,
	})
}

// Cancel withdraws a listing or offer. The original record stays in
// the log; a cancellation record is appended after it.
func (s *ActivityService) Cancel(req models.CancelActivityRequest) (*models.Activity, error) {
	activity, err := s.activities.GetByID(req.ActivityID)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if activity == nil {
		return nil, apperr.NotFound("activity not found")
	}
	if activity.From != req.From {
		return nil, apperr.Validation("only the original wallet can cancel")
	}

	var cancelType models.ActivityType
	switch activity.Type {
	case models.ActivityTypeList:
		cancelType = models.ActivityTypeCancelList
		if activity.NFTIndex != nil {
			nft, err := s.nfts.GetByCollectionAndIndex(activity.CollectionID, *activity.NFTIndex)
			if err != nil {
				return nil, apperr.Unavailable(err)
			}
			if nft != nil {
				nft.Status = models.NFTStatusMinted
				if err := s.nfts.Update(nft); err != nil {
					return nil, apperr.Internal(err)
				}
			}
		}
	case models.ActivityTypeOffer:
		cancelType = models.ActivityTypeCancelOffer
	case models.ActivityTypeOfferCollection:
		cancelType = models.ActivityTypeCancelOffer
		collection, err := s.collections.GetByID(activity.CollectionID)
		if err != nil {
			return nil, apperr.Unavailable(err)
		}
		if collection != nil {
			collection.OfferStatus = models.OfferStatusCanceled
			if err := s.collections.Update(collection); err != nil {
				return nil, apperr.Internal(err)
			}
		}
	default:
		return nil, apperr.Validation("activity cannot be cancelled")
	}

	return s.record(models.Activity{
		CollectionID: activity.CollectionID,
		NFTIndex:     activity.NFTIndex,
		Type:         cancelType,
		Price:        activity.Price,
		From:         req.From,
	})
}

// DeleteActivity removes a record from the log (moderation only)
func (s *ActivityService) DeleteActivity(id string) error {
	activity, err := s.activities.GetByID(id)
	if err != nil {
		return apperr.Unavailable(err)
	}
	if activity == nil {
		return apperr.NotFound("activity not found")
	}
	if err := s.activities.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// record appends an activity and fans it out to live subscribers
func (s *ActivityService) record(activity models.Activity) (*models.Activity, error) {
	if err := s.activities.Create(&activity); err != nil {
		return nil, apperr.Internal(err)
	}
	if s.publisher != nil {
		s.publisher.PublishActivity(activity)
	}
	return &activity, nil
}

// notifyOwner emails the item owner about a new offer, best effort
func (s *ActivityService) notifyOwner(nft *models.NFT, price float64) {
	if s.mailer == nil {
		return
	}
	owner, err := s.persons.GetByWallet(nft.Owner)
	if err != nil || owner == nil || owner.Email == "" {
		return
	}
	if err := s.mailer.SendOfferNotification(owner.Email, nft.Name, price); err != nil {
		zap.L().Warn("offer notification failed",
			zap.String("wallet", nft.Owner),
			zap.Error(err))
	}
}

// activityFilters translates list params into typed store filters
func activityFilters(params models.ActivityParams) []store.Filter {
	var filters []store.Filter
	if params.CollectionID != "" {
		filters = append(filters, store.Equality{Column: "collection_id", Value: params.CollectionID})
	}
	if params.Type != "" {
		filters = append(filters, store.Equality{Column: "type", Value: params.Type})
	}
	if params.Wallet != "" {
		filters = append(filters, store.Equality{Column: "from_wallet", Value: params.Wallet})
	}
	return filters
}
