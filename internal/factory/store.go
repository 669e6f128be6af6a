package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trouvaille/lostfound/internal/config"
	storepkg "github.com/trouvaille/lostfound/internal/store"
	storepg "github.com/trouvaille/lostfound/internal/store/postgres"
	storesqlite "github.com/trouvaille/lostfound/internal/store/sqlite"
)

// NewStore returns the record store selected by cfg.DBDriver.
// Both drivers apply their schema on open, so the returned store is ready.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		st, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", "sqlite").Str("path", cfg.SQLitePath).Msg("store opened")
		return st, nil
	case "postgres":
		st, err := storepg.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", "postgres").Msg("store opened")
		return st, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
