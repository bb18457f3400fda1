package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, role, created_at, updated_at`

func scanUser(row scanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUser(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUser, id))
}

const getUserForUpdate = getUser + ` FOR UPDATE`

func (q *Queries) GetUserForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserForUpdate, id))
}

const createUser = `
INSERT INTO users (id, name, email, role)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	return scanUser(db.QueryRow(ctx, createUser, arg.ID, arg.Name, arg.Email, arg.Role))
}

const updateUserRole = `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`

type UpdateUserRoleParams struct {
	ID   uuid.UUID
	Role string
}

func (q *Queries) UpdateUserRole(ctx context.Context, db DBTX, arg UpdateUserRoleParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserRole, arg.ID, arg.Role)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
