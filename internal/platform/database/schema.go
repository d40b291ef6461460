package database

import (
	"context"

	"gorm.io/gorm"

	"versenotes/internal/logging"
	"versenotes/internal/model"
)

// InitSchema creates users, posts and highlights if they are absent. Posts and
// highlights reference users with ON DELETE CASCADE. A failure is logged and
// reported but must not stop the server from starting.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	l := logging.With("schema")

	if err := db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Post{}, &model.Highlight{}); err != nil {
		l.Error().Err(err).Msg("error initializing database")
		return err
	}

	l.Info().Msg("database tables initialized")
	return nil
}
