package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/matt-dz/recipecenter/internal/database"
	"github.com/matt-dz/recipecenter/internal/password"
	"github.com/matt-dz/recipecenter/internal/role"
)

type Repository struct {
	db       *database.Database
	hasher   password.Hasher
	logger   *slog.Logger
	validate *validator.Validate
}

func NewRepository(db *database.Database, hasher password.Hasher, logger *slog.Logger) *Repository {
	return &Repository{
		db:       db,
		hasher:   hasher,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (r *Repository) LoadAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, fromRow(row))
	}
	return users, nil
}

// Save inserts u and returns its id. u.PasswordHash must already hold an
// encoded hash and u.Username must not be blank.
func (r *Repository) Save(ctx context.Context, u User) (int64, error) {
	if strings.TrimSpace(u.Username) == "" {
		return 0, ErrMissingUsername
	}
	if u.PasswordHash == "" {
		return 0, ErrMissingPasswordHash
	}

	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	id, err := r.db.CreateUser(ctx, database.CreateUserParams{
		Username:           u.Username,
		FirstName:          text(u.FirstName),
		LastName:           text(u.LastName),
		HashedPassword:     u.PasswordHash,
		Roles:              roles,
		ProfilePicturePath: text(u.ProfilePicturePath),
	})
	if err != nil {
		err = database.ClassifyError(err)
		if errors.Is(err, database.ErrUniqueViolation) {
			return 0, errors.Join(ErrUsernameTaken, err)
		}
		return 0, fmt.Errorf("creating user: %w", err)
	}

	r.logger.DebugContext(ctx, "saved user", slog.Int64("user_id", id))
	return id, nil
}

// Register validates reg, hashes its password and stores a new account
// holding the user role.
func (r *Repository) Register(ctx context.Context, reg Registration) (User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	if err := r.validate.Struct(reg); err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrInvalidRegistration, err)
	}
	if err := password.ValidatePassword(reg.Password); err != nil {
		return User{}, err
	}

	hash, err := r.HashPassword(reg.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		Username:     reg.Username,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: hash,
		Roles:        []string{role.LabelUser},
	}
	u.ID, err = r.Save(ctx, u)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// GetByUsername returns false when no account has that username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (User, bool, error) {
	row, err := r.db.GetUserByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("getting user by username: %w", err)
	}
	return fromRow(row), true, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (User, bool, error) {
	row, err := r.db.GetUserByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("getting user %d: %w", id, err)
	}
	return fromRow(row), true, nil
}

// Update overwrites the names, profile picture and password hash of u.ID.
func (r *Repository) Update(ctx context.Context, u User) error {
	if u.PasswordHash == "" {
		return ErrMissingPasswordHash
	}

	n, err := r.db.UpdateUser(ctx, database.UpdateUserParams{
		FirstName:          text(u.FirstName),
		LastName:           text(u.LastName),
		ProfilePicturePath: text(u.ProfilePicturePath),
		HashedPassword:     u.PasswordHash,
		UserID:             u.ID,
	})
	if err != nil {
		return fmt.Errorf("updating user %d: %w", u.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAdmins returns the number of accounts holding the admin role.
func (r *Repository) CountAdmins(ctx context.Context) (int64, error) {
	n, err := r.db.CountAdmins(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return n, nil
}

func (r *Repository) HashPassword(raw string) (string, error) {
	return r.hasher.Hash(raw)
}

// VerifyPassword reports whether raw matches the stored hash of u. A hash
// in an unknown format never matches.
func (r *Repository) VerifyPassword(u User, raw string) bool {
	ok, err := r.hasher.Verify(u.PasswordHash, raw)
	if err != nil {
		r.logger.Warn("verifying password hash", slog.Int64("user_id", u.ID), slog.Any("error", err))
		return false
	}
	return ok
}

func fromRow(row database.User) User {
	roles := row.Roles
	if roles == nil {
		roles = []string{}
	}
	return User{
		ID:                 row.UserID,
		Username:           row.Username,
		FirstName:          row.FirstName.String,
		LastName:           row.LastName.String,
		PasswordHash:       row.HashedPassword,
		Roles:              roles,
		ProfilePicturePath: row.ProfilePicturePath.String,
	}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
