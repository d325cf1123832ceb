package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateItem persists item and returns it with ItemID, OwnerGUID and the
// effective loan length filled in.
//
// The owner row is read inside the insert transaction, so a missing owner is
// reported as [ErrOwnerNotFound] whether or not the connection enforces
// foreign keys. A foreign-key violation maps to the same error.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	ownerQuery, ownerArgs, err := buildFindOwnerQuery(r.db.builder, item.OwnerID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildCreateItemQuery(r.db.builder, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var ownerDefault int
		err := tx.QueryRowContext(ctx, ownerQuery, ownerArgs...).Scan(&item.OwnerGUID, &ownerDefault)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOwnerNotFound
		}
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error reading item owner")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&item.ItemID); err != nil {
			log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
			if r.db.classify(err) == ForeignKeyViolation {
				return ErrOwnerNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		item.EffectiveLoanLengthDays = item.EffectiveLoanLength(ownerDefault)
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// ListItemsByOwner returns every item owned by ownerID ordered by ItemID.
// An owner without items, or an unknown owner, yields an empty slice.
func (r *itemRepository) ListItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsByOwnerQuery(r.db.builder, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItemsByOwner").Msg("error listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var (
			item     models.Item
			override sql.NullInt64
		)
		if err := rows.Scan(
			&item.ItemID,
			&item.GUID,
			&item.Name,
			&item.OwnerID,
			&item.OwnerGUID,
			&override,
			&item.EffectiveLoanLengthDays,
			&item.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItemsByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if override.Valid {
			days := int(override.Int64)
			item.LoanLengthDays = &days
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
