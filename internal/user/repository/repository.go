package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"parley/internal/chat"
	models "parley/internal/user/model"
	"parley/pkg/logger"
)

// UserRepository backs the chat.UserDirectory collaborator. Soft-deleted
// accounts resolve to nothing, which the directory read treats as "omit".
type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {

	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateUser.Insert: ")
	}
	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "userRepo.GetUser.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, profile *models.ContextProfile) error {

	_, err := r.db.NewInsert().
		Model(profile).
		On("CONFLICT (user_id, context) DO UPDATE").
		Set("display_name = EXCLUDED.display_name").
		Set("avatar_url = EXCLUDED.avatar_url").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpsertProfile.Exec: ")
	}
	return nil
}

// GetProfile implements chat.UserDirectory. A user without a profile in
// the requested context falls back to their handle, so a conversation
// started before the counterpart filled that profile still renders.
func (r *UserRepository) GetProfile(ctx context.Context, userID uuid.UUID, context chat.Context) (*chat.Profile, error) {

	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	profile := new(models.ContextProfile)
	err = r.db.NewSelect().
		Model(profile).
		Where("user_id = ? AND context = ?", userID, string(context)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &chat.Profile{
				UserID:      user.ID,
				Username:    user.Username,
				DisplayName: user.Username,
			}, nil
		}
		return nil, errors.Wrap(err, "userRepo.GetProfile.Scan: ")
	}

	return &chat.Profile{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: profile.DisplayName,
		AvatarURL:   profile.AvatarURL,
	}, nil
}
