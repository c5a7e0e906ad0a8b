package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreSvcAddr string
	AdminSvcAddr string
	// DataDir hosts the file-backed store; ignored when RedisURL is set.
	DataDir  string
	RedisURL string
	// WhatsAppNumber is the relay recipient for finalized orders.
	WhatsAppNumber string

	AdminUser         string
	AdminPassword     string
	AdminPasswordHash string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		StoreSvcAddr:      getenv("STORE_SERVICE_ADDR", ":8081"),
		AdminSvcAddr:      getenv("ADMIN_SERVICE_ADDR", ":8082"),
		DataDir:           getenv("DATA_DIR", "./data"),
		RedisURL:          getenv("REDIS_URL", ""),
		WhatsAppNumber:    getenv("WHATSAPP_NUMBER", "5517991725731"),
		AdminUser:         getenv("ADMIN_USER", "admin"),
		AdminPassword:     getenv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
	}
	log.Printf("[config] STORE_SERVICE_ADDR=%s", cfg.StoreSvcAddr)
	log.Printf("[config] ADMIN_SERVICE_ADDR=%s", cfg.AdminSvcAddr)
	log.Printf("[config] DATA_DIR=%s REDIS_URL set=%v", cfg.DataDir, cfg.RedisURL != "")
	return cfg
}
