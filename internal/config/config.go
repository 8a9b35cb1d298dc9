package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBDSN            string
	LogFile          string
	TemplatesDir     string
	StaticDir        string
	FavoritesBackend string // sqlite | redis
	RedisAddr        string
	RedisPassword    string
	RecentWindow     time.Duration
	CookieSecure     bool // set true behind HTTPS
	SessionCapacity  int
	SessionTTL       time.Duration
}

func Load() Config {
	// .env is optional; real environment wins
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "platemarket.db"
	} // sqlite file in project root
	templates := os.Getenv("TEMPLATES_DIR")
	if templates == "" {
		templates = "./web/templates"
	}
	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./web/static"
	}
	backend := os.Getenv("FAVORITES_BACKEND")
	if backend != "redis" {
		backend = "sqlite"
	}
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	window := 24 * time.Hour
	if raw := os.Getenv("RECENT_WINDOW"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			window = d
		} else {
			log.Printf("[config] ignoring bad RECENT_WINDOW=%q", raw)
		}
	}
	cookieSecure, _ := strconv.ParseBool(os.Getenv("COOKIE_SECURE"))
	capacity := 10000
	if raw := os.Getenv("SESSION_CAPACITY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			capacity = n
		} else {
			log.Printf("[config] ignoring bad SESSION_CAPACITY=%q", raw)
		}
	}
	sessionTTL := 24 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			sessionTTL = d
		} else {
			log.Printf("[config] ignoring bad SESSION_TTL=%q", raw)
		}
	}

	cfg := Config{
		Port:             port,
		DBDSN:            dsn,
		LogFile:          os.Getenv("LOG_FILE"),
		TemplatesDir:     templates,
		StaticDir:        static,
		FavoritesBackend: backend,
		RedisAddr:        redisAddr,
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RecentWindow:     window,
		CookieSecure:     cookieSecure,
		SessionCapacity:  capacity,
		SessionTTL:       sessionTTL,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s FAVORITES_BACKEND=%s TEMPLATES_DIR=%s LOG_FILE=%s COOKIE_SECURE=%t",
		cfg.Port, cfg.DBDSN, cfg.FavoritesBackend, cfg.TemplatesDir, cfg.LogFile, cfg.CookieSecure)
	return cfg
}
