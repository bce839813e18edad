package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arcmarket/arc-api/internal/models"
)

const personColumns = `id, wallet, name, photo_url, background_url, email, joined_date, created_at, updated_at`

// PersonRepository handles database operations related to persons
type PersonRepository struct {
	db *Database
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *Database) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	person := &models.Person{}
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`

	err := r.db.GetDB().Get(person, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return person, nil
}

// GetByWallet retrieves a person by wallet address
func (r *PersonRepository) GetByWallet(wallet string) (*models.Person, error) {
	person := &models.Person{}
	query := `SELECT ` + personColumns + ` FROM persons WHERE wallet = $1`

	err := r.db.GetDB().Get(person, query, strings.ToLower(wallet))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return person, nil
}

// List retrieves persons matching the given filters
func (r *PersonRepository) List(filters []Filter, page, pageSize int) ([]models.Person, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	where, args := buildWhere(filters, 1)
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(
		`SELECT `+personColumns+` FROM persons%s ORDER BY joined_date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, pageSize, offset)

	persons := []models.Person{}
	if err := r.db.GetDB().Select(&persons, query, args...); err != nil {
		return nil, err
	}

	return persons, nil
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	person.Wallet = strings.ToLower(person.Wallet)
	now := time.Now()
	if person.JoinedDate.IsZero() {
		person.JoinedDate = now
	}
	person.CreatedAt = now
	person.UpdatedAt = now

	query := `INSERT INTO persons (` + personColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.GetDB().Exec(query,
		person.ID, person.Wallet, person.Name, person.PhotoURL,
		person.BackgroundURL, person.Email, person.JoinedDate,
		person.CreatedAt, person.UpdatedAt)

	return err
}

// Update updates a person's profile
func (r *PersonRepository) Update(person *models.Person) error {
	person.UpdatedAt = time.Now()

	query := `UPDATE persons SET name = $1, photo_url = $2, background_url = $3,
			  email = $4, updated_at = $5
			  WHERE id = $6`

	_, err := r.db.GetDB().Exec(query,
		person.Name, person.PhotoURL, person.BackgroundURL,
		person.Email, person.UpdatedAt, person.ID)

	return err
}
