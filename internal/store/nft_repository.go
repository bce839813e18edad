package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arcmarket/arc-api/internal/models"
)

const nftColumns = `id, collection_id, index, owner, creator, name, description,
	art_uri, price, status, properties, created_at, updated_at`

// NFTRepository handles database operations related to NFTs
type NFTRepository struct {
	db *Database
}

// NewNFTRepository creates a new NFTRepository
func NewNFTRepository(db *Database) *NFTRepository {
	return &NFTRepository{
		db: db,
	}
}

// GetByID retrieves an NFT by ID
func (r *NFTRepository) GetByID(id string) (*models.NFT, error) {
	nft := &models.NFT{}
	query := `SELECT ` + nftColumns + ` FROM nfts WHERE id = $1`

	err := r.db.GetDB().Get(nft, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return nft, nil
}

// GetByCollectionAndIndex retrieves an NFT by its collection and index
func (r *NFTRepository) GetByCollectionAndIndex(collectionID, index string) (*models.NFT, error) {
	nft := &models.NFT{}
	query := `SELECT ` + nftColumns + ` FROM nfts WHERE collection_id = $1 AND index = $2`

	err := r.db.GetDB().Get(nft, query, collectionID, index)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return nft, nil
}

// ListByCollection retrieves all NFTs in a collection
func (r *NFTRepository) ListByCollection(collectionID string) ([]models.NFT, error) {
	nfts := []models.NFT{}
	query := `SELECT ` + nftColumns + ` FROM nfts WHERE collection_id = $1 ORDER BY index ASC`

	if err := r.db.GetDB().Select(&nfts, query, collectionID); err != nil {
		return nil, err
	}

	return nfts, nil
}

// List retrieves NFTs matching the given filters
func (r *NFTRepository) List(filters []Filter, page, pageSize int) ([]models.NFT, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	where, args := buildWhere(filters, 1)
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(
		`SELECT `+nftColumns+` FROM nfts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, pageSize, offset)

	nfts := []models.NFT{}
	if err := r.db.GetDB().Select(&nfts, query, args...); err != nil {
		return nil, err
	}

	return nfts, nil
}

// Search retrieves NFTs matching a keyword across display fields,
// matching the full phrase and each word independently
func (r *NFTRepository) Search(keyword string) ([]models.NFT, error) {
	filter := keywordSearch(
		[]string{"name", "description", "owner", "creator", "index"},
		keyword,
	)
	return r.List([]Filter{filter}, 1, 50)
}

// CountByCollection counts the NFTs referencing a collection
func (r *NFTRepository) CountByCollection(collectionID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM nfts WHERE collection_id = $1`

	if err := r.db.GetDB().Get(&count, query, collectionID); err != nil {
		return 0, err
	}

	return count, nil
}

// Create creates a new NFT
func (r *NFTRepository) Create(nft *models.NFT) error {
	if nft.ID == "" {
		nft.ID = uuid.New().String()
	}
	now := time.Now()
	nft.CreatedAt = now
	nft.UpdatedAt = now

	query := `INSERT INTO nfts (` + nftColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.GetDB().Exec(query,
		nft.ID, nft.CollectionID, nft.Index, nft.Owner, nft.Creator,
		nft.Name, nft.Description, nft.ArtURI, nft.Price, nft.Status,
		nft.Properties, nft.CreatedAt, nft.UpdatedAt)

	return err
}

// Update updates an NFT
func (r *NFTRepository) Update(nft *models.NFT) error {
	nft.UpdatedAt = time.Now()

	query := `UPDATE nfts SET owner = $1, name = $2, description = $3, art_uri = $4,
			  price = $5, status = $6, properties = $7, updated_at = $8
			  WHERE id = $9`

	_, err := r.db.GetDB().Exec(query,
		nft.Owner, nft.Name, nft.Description, nft.ArtURI,
		nft.Price, nft.Status, nft.Properties, nft.UpdatedAt, nft.ID)

	return err
}

// Delete removes an NFT
func (r *NFTRepository) Delete(id string) error {
	query := `DELETE FROM nfts WHERE id = $1`
	_, err := r.db.GetDB().Exec(query, id)
	return err
}
