package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trouvaille/lostfound/internal/blob"
	"github.com/trouvaille/lostfound/internal/config"
)

// NewBlobStore returns the asset store selected by cfg.BlobDriver.
func NewBlobStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (blob.Store, error) {
	switch cfg.BlobDriver {
	case "fs":
		st, err := blob.NewFS(cfg.FSBlobDir, cfg.FSBlobURLPrefix)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", "fs").Str("dir", cfg.FSBlobDir).Msg("blob store ready")
		return st, nil
	case "s3":
		st, err := blob.NewS3(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3URLPrefix)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", "s3").Str("bucket", cfg.S3Bucket).Msg("blob store ready")
		return st, nil
	case "memory":
		return blob.NewMem(), nil
	default:
		return nil, fmt.Errorf("unknown BLOB_DRIVER: %s", cfg.BlobDriver)
	}
}
