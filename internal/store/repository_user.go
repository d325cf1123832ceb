package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// store-assigned UserID.
//
// Error handling:
//   - unique violation on email or guid → [ErrEmailAlreadyExists];
//   - any other driver-level error → wrapped [ErrExecutingStatement].
//
// The insert runs in its own transaction, so a failure leaves no row behind.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
			if r.db.classify(err) == UniqueViolation {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose normalized email equals email.
// [sql.ErrNoRows] is reported as [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": models.NormalizeEmail(email)})
}

// FindUserByGUID retrieves the user with the given external identifier.
// [sql.ErrNoRows] is reported as [ErrUserNotFound].
func (r *userRepository) FindUserByGUID(ctx context.Context, guid string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"guid": guid})
}

// UpdateDefaultLoanLength sets the user's default loan length and refreshes
// updated_at. Items without their own override pick the new value up on the
// next read.
func (r *userRepository) UpdateDefaultLoanLength(ctx context.Context, userID int64, days int, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDefaultLoanLengthQuery(r.db.builder, userID, days, now)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateDefaultLoanLength").Msg("error updating user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrUserNotFound
		}

		updated, err = r.scanUser(ctx, tx, sq.Eq{"user_id": userID})
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	return r.scanUser(ctx, r.db, where)
}

// queryRower is satisfied by both *DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *userRepository) scanUser(ctx context.Context, q queryRower, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = q.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.GUID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.DefaultLoanLengthDays,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
