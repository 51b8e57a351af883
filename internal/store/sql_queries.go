package store

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Reznov00/wallet-keeper/models"
)

const userColumns = `id, name, email, password_hash, wallet_address, private_key, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, name, email, password_hash, wallet_address, private_key)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
	FROM users
	ORDER BY created_at;`

	updatePassword = `UPDATE users
	SET password_hash = $1, updated_at = now()
	WHERE id = $2
	RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildUpdateUserQuery builds an UPDATE touching only the non-nil fields of
// update.
func buildUpdateUserQuery(id string, update models.UserUpdate, now time.Time) (string, []any, error) {
	set := squirrel.Eq{"updated_at": now}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	return psql.
		Update(models.User{}.TableName()).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
