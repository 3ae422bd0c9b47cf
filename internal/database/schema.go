package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	chatmodel "parley/internal/chat/model"
	usermodel "parley/internal/user/model"
)

// CreateSchema installs every table, including the
// (user_low, user_high, signature) unique constraint that concurrent
// conversation creation relies on. IfNotExists makes it safe to run on
// every startup.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*usermodel.User)(nil),
		(*usermodel.ContextProfile)(nil),
		(*chatmodel.Conversation)(nil),
		(*chatmodel.Message)(nil),
		(*chatmodel.ExpirySetting)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "database.CreateSchema.%T: ", m)
		}
	}
	return nil
}
