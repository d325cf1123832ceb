package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Tristano1/friend-library-system/models"
)

var userColumns = []string{
	"user_id",
	"guid",
	"email",
	"password_hash",
	"display_name",
	"default_loan_length_days",
	"is_active",
	"created_at",
	"updated_at",
}

var itemColumns = []string{
	"items.item_id",
	"items.guid",
	"items.name",
	"items.owner_id",
	"users.guid",
	"items.loan_length_days",
	"COALESCE(items.loan_length_days, users.default_loan_length_days)",
	"items.created_at",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns[1:]...).
		Values(
			user.GUID,
			user.Email,
			user.PasswordHash,
			user.DisplayName,
			user.DefaultLoanLengthDays,
			user.IsActive,
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildUpdateDefaultLoanLengthQuery(b sq.StatementBuilderType, userID int64, days int, now time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("default_loan_length_days", days).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildFindOwnerQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select("guid", "default_loan_length_days").
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

func buildCreateItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return b.Insert(models.Item{}.TableName()).
		Columns("guid", "name", "owner_id", "loan_length_days", "created_at").
		Values(item.GUID, item.Name, item.OwnerID, nullableDays(item.LoanLengthDays), item.CreatedAt).
		Suffix("RETURNING item_id").
		ToSql()
}

func buildListItemsByOwnerQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(itemColumns...).
		From(models.Item{}.TableName()).
		Join("users ON users.user_id = items.owner_id").
		Where(sq.Eq{"items.owner_id": ownerID}).
		OrderBy("items.item_id").
		ToSql()
}

func nullableDays(days *int) sql.NullInt64 {
	if days == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*days), Valid: true}
}
