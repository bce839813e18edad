package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arcmarket/arc-api/internal/models"
)

const activityColumns = `id, collection_id, nft_index, type, price, from_wallet, to_wallet, date, created_at`

// ActivityRepository handles database operations related to the
// activity log. Activity rows are append-only; there is no update.
type ActivityRepository struct {
	db *Database
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *Database) *ActivityRepository {
	return &ActivityRepository{
		db: db,
	}
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(id string) (*models.Activity, error) {
	activity := &models.Activity{}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	err := r.db.GetDB().Get(activity, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return activity, nil
}

// ListByCollection retrieves a collection's activity, oldest first
func (r *ActivityRepository) ListByCollection(collectionID string) ([]models.Activity, error) {
	activities := []models.Activity{}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE collection_id = $1 ORDER BY date ASC, created_at ASC`

	if err := r.db.GetDB().Select(&activities, query, collectionID); err != nil {
		return nil, err
	}

	return activities, nil
}

// ListByWallet retrieves activity a wallet participated in
func (r *ActivityRepository) ListByWallet(wallet string) ([]models.Activity, error) {
	activities := []models.Activity{}
	query := `SELECT ` + activityColumns + ` FROM activities
			  WHERE from_wallet = $1 OR to_wallet = $1
			  ORDER BY date ASC, created_at ASC`

	if err := r.db.GetDB().Select(&activities, query, wallet); err != nil {
		return nil, err
	}

	return activities, nil
}

// List retrieves activities matching the given filters
func (r *ActivityRepository) List(filters []Filter, page, pageSize int) ([]models.Activity, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	where, args := buildWhere(filters, 1)
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(
		`SELECT `+activityColumns+` FROM activities%s ORDER BY date ASC, created_at ASC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, pageSize, offset)

	activities := []models.Activity{}
	if err := r.db.GetDB().Select(&activities, query, args...); err != nil {
		return nil, err
	}

	return activities, nil
}

// Create appends an activity to the log
func (r *ActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()
	if activity.Date == 0 {
		activity.Date = activity.CreatedAt.Unix()
	}

	query := `INSERT INTO activities (` + activityColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.GetDB().Exec(query,
		activity.ID, activity.CollectionID, activity.NFTIndex, activity.Type,
		activity.Price, activity.From, activity.To, activity.Date, activity.CreatedAt)

	return err
}

// Delete removes an activity record
func (r *ActivityRepository) Delete(id string) error {
	query := `DELETE FROM activities WHERE id = $1`
	_, err := r.db.GetDB().Exec(query, id)
	return err
}
