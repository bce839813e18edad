package services

import (
	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// Store access capabilities consumed by the services. The sqlx
// repositories in internal/store satisfy these; tests substitute fakes.

// CollectionStore is the query/update capability over collections
type CollectionStore interface {
	GetByID(id string) (*models.Collection, error)
	GetByName(name string) (*models.Collection, error)
	GetByURL(url string) (*models.Collection, error)
	List(filters []store.Filter, page, pageSize int) ([]models.Collection, error)
	Search(keyword string) ([]models.Collection, error)
	Create(collection *models.Collection) error
	Update(collection *models.Collection) error
	Delete(id string) error
}

// NFTStore is the query/update capability over NFTs
type NFTStore interface {
	GetByID(id string) (*models.NFT, error)
	GetByCollectionAndIndex(collectionID, index string) (*models.NFT, error)
	ListByCollection(collectionID string) ([]models.NFT, error)
	List(filters []store.Filter, page, pageSize int) ([]models.NFT, error)
	Search(keyword string) ([]models.NFT, error)
	CountByCollection(collectionID string) (int, error)
	Create(nft *models.NFT) error
	Update(nft *models.NFT) error
	Delete(id string) error
}

// ActivityStore is the append/query capability over the activity log
type ActivityStore interface {
	GetByID(id string) (*models.Activity, error)
	ListByCollection(collectionID string) ([]models.Activity, error)
	ListByWallet(wallet string) ([]models.Activity, error)
	List(filters []store.Filter, page, pageSize int) ([]models.Activity, error)
	Create(activity *models.Activity) error
	Delete(id string) error
}

// PersonStore is the lookup/update capability over persons
type PersonStore interface {
	GetByID(id string) (*models.Person, error)
	GetByWallet(wallet string) (*models.Person, error)
	List(filters []store.Filter, page, pageSize int) ([]models.Person, error)
	Create(person *models.Person) error
	Update(person *models.Person) error
}

// ActivityPublisher pushes freshly recorded activity to live
// subscribers. A nil publisher disables the feed.
type ActivityPublisher interface {
	PublishActivity(activity models.Activity)
}
