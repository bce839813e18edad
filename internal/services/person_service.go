package services

import (
	"strings"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// PersonService handles owner profile operations and per-person views
type PersonService struct {
	persons     PersonStore
	nfts        NFTStore
	activities  ActivityStore
	collections CollectionStore
}

// NewPersonService creates a new PersonService
func NewPersonService(persons PersonStore, nfts NFTStore, activities ActivityStore, collections CollectionStore) *PersonService {
	return &PersonService{
		persons:     persons,
		nfts:        nfts,
		activities:  activities,
		collections: collections,
	}
}

// GetByWallet returns the person registered for a wallet address
func (s *PersonService) GetByWallet(wallet string) (*models.Person, error) {
	person, err := s.persons.GetByWallet(wallet)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if person == nil {
		return nil, apperr.NotFound("owner not found")
	}
	return person, nil
}

// List returns all persons
func (s *PersonService) List(page, pageSize int) ([]models.Person, error) {
	persons, err := s.persons.List(nil, page, pageSize)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return persons, nil
}

// Create registers a new person for a wallet
func (s *PersonService) Create(req models.CreatePersonRequest) (*models.Person, error) {
	if req.Wallet == "" {
		return nil, apperr.Validation("wallet address cannot be null")
	}

	existing, err := s.persons.GetByWallet(req.Wallet)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if existing != nil {
		return nil, apperr.Validation("wallet already registered")
	}

	person := &models.Person{
		Wallet:        strings.ToLower(req.Wallet),
		Name:          req.Name,
		PhotoURL:      req.PhotoURL,
		BackgroundURL: req.BackgroundURL,
		Email:         req.Email,
	}

	if err := s.persons.Create(person); err != nil {
		return nil, apperr.Internal(err)
	}

	return person, nil
}

// Update applies a profile patch
func (s *PersonService) Update(wallet string, req models.UpdatePersonRequest) (*models.Person, error) {
	person, err := s.persons.GetByWallet(wallet)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if person == nil {
		return nil, apperr.NotFound("owner not found")
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.PhotoURL != nil {
		person.PhotoURL = *req.PhotoURL
	}
	if req.BackgroundURL != nil {
		person.BackgroundURL = *req.BackgroundURL
	}
	if req.Email != nil {
		person.Email = *req.Email
	}

	if err := s.persons.Update(person); err != nil {
		return nil, apperr.Internal(err)
	}

	return person, nil
}

// GetNFTs returns the NFTs a wallet currently owns
func (s *PersonService) GetNFTs(wallet string) ([]models.NFT, error) {
	nfts, err := s.nfts.List([]store.Filter{
		store.Equality{Column: "owner", Value: strings.ToLower(wallet)},
	}, 1, 200)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return nfts, nil
}

// GetHistory returns the activity a wallet participated in
func (s *PersonService) GetHistory(wallet string) ([]models.Activity, error) {
	activities, err := s.activities.ListByWallet(strings.ToLower(wallet))
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return activities, nil
}

// GetOffers returns the open offers a wallet has placed
func (s *PersonService) GetOffers(wallet string) ([]models.Activity, error) {
	activities, err := s.activities.List([]store.Filter{
		store.Equality{Column: "from_wallet", Value: strings.ToLower(wallet)},
		store.In{Column: "type", Values: []interface{}{
			string(models.ActivityTypeOffer),
			string(models.ActivityTypeOfferCollection),
		}},
	}, 1, 200)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return activities, nil
}

// GetCollections returns the collections a wallet created
func (s *PersonService) GetCollections(wallet string) ([]models.Collection, error) {
	collections, err := s.collections.List([]store.Filter{
		store.Equality{Column: "creator", Value: strings.ToLower(wallet)},
	}, 1, 200)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	return collections, nil
}
