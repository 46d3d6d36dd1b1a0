package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-server/internal/config"
	"github.com/portfolio/portfolio-server/internal/database"
	"github.com/portfolio/portfolio-server/internal/sheets"
)

// Open builds the contact store selected by cfg.ContactStore. The returned
// close func releases whatever connection the store holds.
func Open(ctx context.Context, cfg *config.Config) (ContactRepository, func() error, error) {
	switch cfg.ContactStore {
	case config.StorePostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, config.DBPingTimeout)
		defer cancel()
		if err := db.Ping(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		log.Info().Msg("contact store: postgres")
		return NewPostgresContactRepository(db.DB), db.Close, nil

	case config.StoreSheet, "":
		client := sheets.NewClient(cfg.GoogleScriptURL, cfg.UpstreamTimeout())
		log.Info().Msg("contact store: google sheets")
		return NewSheetContactRepository(client), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown contact store %q", cfg.ContactStore)
	}
}
