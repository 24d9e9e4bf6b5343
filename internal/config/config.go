package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	AdminIDs    []int64
	DatabaseURL string
	MediaDir    string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Printf("config.Load: no .env file found - using env variables")
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MediaDir:    os.Getenv("MEDIA_DIR"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("config.Load: BOT_TOKEN is required")
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config.Load: DATABASE_URL is required")
	}

	adminIDs, err := ParseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	if len(adminIDs) == 0 {
		return nil, fmt.Errorf("config.Load: ADMIN_IDS is required")
	}

	cfg.AdminIDs = adminIDs

	if cfg.MediaDir == "" {
		cfg.MediaDir = "media_files"
	}

	return cfg, nil
}

// ParseAdminIDs разбирает список идентификаторов админов через запятую.
func ParseAdminIDs(raw string) ([]int64, error) {
	var ids []int64

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config.ParseAdminIDs: invalid admin id %q", part)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
