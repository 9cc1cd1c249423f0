package receipt

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/buntdb"
)

// ErrNotFound is returned when no points exist for a receipt ID.
var ErrNotFound = errors.New("not found")

// uuidMaxCollisions bounds the retry loop on identifier collisions;
// random UUID collisions are astronomically unlikely.
const uuidMaxCollisions = 3

type ReceiptRepository interface {
	// SavePoints stores a computed point total under a fresh identifier and
	// returns that identifier.
	SavePoints(points int) (string, error)
	// PointsByID returns the points stored for an identifier, or ErrNotFound.
	PointsByID(id string) (int, error)
}

// BuntDBReceiptRepository keeps scored receipts in an in-memory buntdb
// instance. Only the point total survives scoring; the receipt body itself
// is never persisted.
type BuntDBReceiptRepository struct {
	db *buntdb.DB
}

func NewBuntDBReceiptRepository(db *buntdb.DB) *BuntDBReceiptRepository {
	return &BuntDBReceiptRepository{db: db}
}

// SavePoints - generates a UUID for the scored receipt and stores the points
// under it. Identifier generation and insert happen in a single Update
// transaction, so concurrent saves can never be handed the same identifier.
func (repo *BuntDBReceiptRepository) SavePoints(points int) (string, error) {
	var receiptID string

	err := repo.db.Update(func(tx *buntdb.Tx) error {
		for i := 0; i < uuidMaxCollisions; i++ {
			id, err := uuid.NewRandom()
			if err != nil {
				return err
			}
			key := "receipt:" + id.String()
			if _, getErr := tx.Get(key); getErr == nil {
				continue // key already taken, roll again
			}
			if _, _, err := tx.Set(key, strconv.Itoa(points), nil); err != nil {
				return err
			}
			receiptID = id.String()
			return nil
		}
		return errors.New("could not create UUID for receipt")
	})
	if err != nil {
		return "", err
	}
	return receiptID, nil
}

// PointsByID - takes a receipt identifier and returns the points stored for it.
func (repo *BuntDBReceiptRepository) PointsByID(id string) (int, error) {
	var stored string

	err := repo.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get("receipt:" + id)
		if err != nil {
			return err
		}
		stored = value
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(stored)
}
