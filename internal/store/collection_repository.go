package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arcmarket/arc-api/internal/models"
)

const collectionColumns = `id, contract, name, url, description, category, blockchain, platform,
	logo_url, featured_url, banner_url, links, creator, creator_earning,
	is_verified, is_explicit, properties, offer_status, created_at, updated_at`

// CollectionRepository handles database operations related to collections
type CollectionRepository struct {
	db *Database
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *Database) *CollectionRepository {
	return &CollectionRepository{
		db: db,
	}
}

// GetByID retrieves a collection by ID
func (r *CollectionRepository) GetByID(id string) (*models.Collection, error) {
	collection := &models.Collection{}
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = $1`

	err := r.db.GetDB().Get(collection, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return collection, nil
}

// GetByName retrieves a collection by its unique name
func (r *CollectionRepository) GetByName(name string) (*models.Collection, error) {
	collection := &models.Collection{}
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE name = $1`

	err := r.db.GetDB().Get(collection, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return collection, nil
}

// GetByURL retrieves a collection by its unique url slug
func (r *CollectionRepository) GetByURL(url string) (*models.Collection, error) {
	collection := &models.Collection{}
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE url = $1`

	err := r.db.GetDB().Get(collection, query, url)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return collection, nil
}

// List retrieves collections matching the given filters
func (r *CollectionRepository) List(filters []Filter, page, pageSize int) ([]models.Collection, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	where, args := buildWhere(filters, 1)
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(
		`SELECT `+collectionColumns+` FROM collections%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, pageSize, offset)

	collections := []models.Collection{}
	if err := r.db.GetDB().Select(&collections, query, args...); err != nil {
		return nil, err
	}

	return collections, nil
}

// Search retrieves collections matching a keyword across display
// fields, matching the full phrase and each word independently
func (r *CollectionRepository) Search(keyword string) ([]models.Collection, error) {
	filter := keywordSearch(
		[]string{"name", "description", "blockchain", "category", "platform"},
		keyword,
	)
	return r.List([]Filter{filter}, 1, 50)
}

// Create creates a new collection
func (r *CollectionRepository) Create(collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.New().String()
	}
	now := time.Now()
	collection.CreatedAt = now
	collection.UpdatedAt = now

	query := `INSERT INTO collections (` + collectionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.GetDB().Exec(query,
		collection.ID, collection.Contract, collection.Name, collection.URL,
		collection.Description, collection.Category, collection.Blockchain,
		collection.Platform, collection.LogoURL, collection.FeaturedURL,
		collection.BannerURL, collection.Links, collection.Creator,
		collection.CreatorEarning, collection.IsVerified, collection.IsExplicit,
		collection.Properties, collection.OfferStatus,
		collection.CreatedAt, collection.UpdatedAt)

	return err
}

// Update updates a collection
func (r *CollectionRepository) Update(collection *models.Collection) error {
	collection.UpdatedAt = time.Now()

	query := `UPDATE collections SET description = $1, category = $2, logo_url = $3,
			  featured_url = $4, banner_url = $5, links = $6, is_explicit = $7,
			  properties = $8, offer_status = $9, updated_at = $10
			  WHERE id = $11`

	_, err := r.db.GetDB().Exec(query,
		collection.Description, collection.Category, collection.LogoURL,
		collection.FeaturedURL, collection.BannerURL, collection.Links,
		collection.IsExplicit, collection.Properties, collection.OfferStatus,
		collection.UpdatedAt, collection.ID)

	return err
}

// Delete removes a collection
func (r *CollectionRepository) Delete(id string) error {
	query := `DELETE FROM collections WHERE id = $1`
	_, err := r.db.GetDB().Exec(query, id)
	return err
}
