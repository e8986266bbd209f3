package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_PAGE_SIZE", "4")
	t.Setenv("SESSION_MAX_AGE_HOURS", "2")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SEED_DATA", "false")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Fatalf("port: got=%q", cfg.Server.Port)
	}
	if cfg.Catalog.PageSize != 4 {
		t.Fatalf("page size: got=%d", cfg.Catalog.PageSize)
	}
	if cfg.Session.MaxAge != 2*time.Hour {
		t.Fatalf("session max age: got=%s", cfg.Session.MaxAge)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("cors origins: got=%v", cfg.Server.CORSOrigins)
	}
	if cfg.Database.SeedData {
		t.Fatalf("seed data: expected false")
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "twelve")
	t.Setenv("REDIS_DB", "x")

	cfg := Load()
	if cfg.Catalog.PageSize != 12 {
		t.Fatalf("page size fallback: got=%d", cfg.Catalog.PageSize)
	}
	if cfg.Redis.DB != 0 {
		t.Fatalf("redis db fallback: got=%d", cfg.Redis.DB)
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "store", SSLMode: "disable"}
	want := "host=db user=u password=p dbname=store port=5432 sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("dsn: got=%q want=%q", got, want)
	}

	d.URL = "postgres://x@y/z"
	if got := d.DSN(); got != d.URL {
		t.Fatalf("dsn url: got=%q", got)
	}
}
