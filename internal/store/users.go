package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = sql.ErrNoRows

// User is the one persisted record of the system: identity comes from the
// external provider (clerk_id is its stable key), points feed the
// leaderboard.
type User struct {
	ID           string    `json:"id"`
	ClerkID      string    `json:"clerkId"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	ProfileImage string    `json:"profileImage"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = `id, clerk_id, email, first_name, last_name, profile_image, points, created_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.ClerkID, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfileImage, &u.Points, &u.CreatedAt)
	return u, err
}

// FindOrCreate inserts the user if the clerk id is new, otherwise returns the
// existing record untouched. Two racing creations resolve through the unique
// clerk_id index: the loser's insert is a no-op and both read the same row.
func (r *UserRepo) FindOrCreate(ctx context.Context, clerkID, email, firstName, lastName, profileImage string) (User, error) {
	const ins = `
insert into users (id, clerk_id, email, first_name, last_name, profile_image, points)
values ($1,$2,$3,$4,$5,$6,0)
on conflict (clerk_id) do nothing`
	if _, err := r.DB.ExecContext(ctx, ins,
		uuid.NewString(), clerkID, email, firstName, lastName, profileImage); err != nil {
		return User{}, err
	}
	return r.GetByClerkID(ctx, clerkID)
}

func (r *UserRepo) GetByClerkID(ctx context.Context, clerkID string) (User, error) {
	const q = `select ` + userColumns + ` from users where clerk_id = $1`
	return scanUser(r.DB.QueryRowContext(ctx, q, clerkID))
}

// AddPoints bumps the score and returns the updated record. ErrNotFound when
// the clerk id is unknown.
func (r *UserRepo) AddPoints(ctx context.Context, clerkID string, delta int) (User, error) {
	const q = `
update users set points = points + $2
where clerk_id = $1
returning ` + userColumns
	return scanUser(r.DB.QueryRowContext(ctx, q, clerkID, delta))
}

// Leaderboard returns users by points, highest first.
func (r *UserRepo) Leaderboard(ctx context.Context, limit int) ([]User, error) {
	const q = `select ` + userColumns + ` from users order by points desc, created_at asc limit $1`
	return r.queryUsers(ctx, q, limit)
}

// All returns every user; diagnostics only.
func (r *UserRepo) All(ctx context.Context) ([]User, error) {
	const q = `select ` + userColumns + ` from users order by created_at asc`
	return r.queryUsers(ctx, q)
}

func (r *UserRepo) queryUsers(ctx context.Context, q string, args ...any) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.ClerkID, &u.Email, &u.FirstName, &u.LastName,
			&u.ProfileImage, &u.Points, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
