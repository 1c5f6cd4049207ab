package main

import (
	"log"
	"net/http"

	emailPkg "tapsandtakeout/internal/adapters/email"
	web "tapsandtakeout/internal/adapters/http"
	"tapsandtakeout/internal/adapters/storage/content"
	"tapsandtakeout/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	store := content.NewJSONStore(cfg.DataDir)
	stores := &web.Stores{ContentStore: store}

	web.SetAdminPasswordHash(cfg.AdminPasswordHash)

	// Configure email sender for the contact form
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.ContactFrom), cfg.ContactTo, cfg.ContactFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.ContactTo, cfg.ContactFrom)
		if cfg.Env == "production" {
			log.Println("WARNING: TT_RESEND_KEY is not set, contact form delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set TT_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, cfg.SessionSecret)

	log.Printf("Taps & Takeout %s starting on %s (env=%s, data=%s)", version, cfg.Addr, cfg.Env, cfg.DataDir)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
