package store

import (
	"context"
	"time"

	"github.com/Tristano1/friend-library-system/models"
)

// UserRepository persists library members.
type UserRepository interface {
	// CreateUser inserts user in a single transaction and returns it with the
	// store-assigned UserID. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByGUID looks a user up by external identifier.
	FindUserByGUID(ctx context.Context, guid string) (models.User, error)

	// UpdateDefaultLoanLength changes the default loan length of the user and
	// returns the updated record.
	UpdateDefaultLoanLength(ctx context.Context, userID int64, days int, now time.Time) (models.User, error)
}

// ItemRepository persists lendable items.
type ItemRepository interface {
	// CreateItem inserts item for item.OwnerID. An owner id that does not
	// reference a user yields [ErrOwnerNotFound].
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// ListItemsByOwner returns the owner's items in insertion order with the
	// effective loan length resolved against the owner's current default.
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]models.Item, error)
}
