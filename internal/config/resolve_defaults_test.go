package config

import (
	"os"
	"testing"
)

func unsetDriverEnv() {
	_ = os.Unsetenv("LOSTFOUND_DB_DRIVER")
	_ = os.Unsetenv("LOSTFOUND_POSTGRES_DSN")
	_ = os.Unsetenv("LOSTFOUND_BLOB_DRIVER")
	_ = os.Unsetenv("LOSTFOUND_S3_BUCKET")
	_ = os.Unsetenv("LOSTFOUND_S3_URL_PREFIX")
}

func TestResolveDefaultsRejectsUnknownDriver(t *testing.T) {
	unsetDriverEnv()
	_ = os.Setenv("LOSTFOUND_DB_DRIVER", "oracle")
	defer unsetDriverEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported DB_DRIVER")
	}
}

func TestResolveDefaultsPostgresRequiresDSN(t *testing.T) {
	unsetDriverEnv()
	_ = os.Setenv("LOSTFOUND_DB_DRIVER", "postgres")
	defer unsetDriverEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for postgres without DSN")
	}

	_ = os.Setenv("LOSTFOUND_POSTGRES_DSN", "postgres://localhost:5432/lostfound")
	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("unexpected driver: %s", cfg.DBDriver)
	}
}

func TestResolveDefaultsDerivesS3URLPrefix(t *testing.T) {
	unsetDriverEnv()
	_ = os.Setenv("LOSTFOUND_BLOB_DRIVER", "s3")
	_ = os.Setenv("LOSTFOUND_S3_BUCKET", "festival-assets")
	defer unsetDriverEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	want := "https://festival-assets.s3.eu-west-3.amazonaws.com/"
	if cfg.S3URLPrefix != want {
		t.Fatalf("derived prefix = %s, want %s", cfg.S3URLPrefix, want)
	}
}

func TestResolveDefaultsS3RequiresBucket(t *testing.T) {
	unsetDriverEnv()
	_ = os.Setenv("LOSTFOUND_BLOB_DRIVER", "s3")
	defer unsetDriverEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for s3 without bucket")
	}
}
