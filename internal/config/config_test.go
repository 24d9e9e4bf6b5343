package config

import (
	"reflect"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "100,200")
	t.Setenv("DATABASE_URL", "postgres://localhost/bot")
	t.Setenv("MEDIA_DIR", "")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BotToken != "test-token" {
		t.Errorf("BotToken = %q", cfg.BotToken)
	}
	if !reflect.DeepEqual(cfg.AdminIDs, []int64{100, 200}) {
		t.Errorf("AdminIDs = %v", cfg.AdminIDs)
	}
	if cfg.DatabaseURL != "postgres://localhost/bot" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.MediaDir != "media_files" {
		t.Errorf("MediaDir default = %q", cfg.MediaDir)
	}
}

func TestLoadRequiresBotToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Errorf("expected error for missing BOT_TOKEN")
	}
}

func TestLoadRequiresAdminIDs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_IDS", "")

	if _, err := Load(); err == nil {
		t.Errorf("expected error for empty ADMIN_IDS")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Errorf("expected error for missing DATABASE_URL")
	}
}

func TestParseAdminIDs(t *testing.T) {
	ids, err := ParseAdminIDs(" 1, 2 ,3,,")
	if err != nil {
		t.Fatalf("ParseAdminIDs: %v", err)
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3}) {
		t.Errorf("ids = %v", ids)
	}

	if _, err := ParseAdminIDs("1,abc"); err == nil {
		t.Errorf("expected error for a non-numeric id")
	}

	ids, err = ParseAdminIDs("")
	if err != nil {
		t.Fatalf("ParseAdminIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("empty input must yield no ids, got %v", ids)
	}
}
