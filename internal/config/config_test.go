package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "password")
	t.Setenv("APP_ENV", "production") // skip .env lookup
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Store.MenuFile != "data/menu.json" {
		t.Errorf("unexpected default menu file: %q", cfg.Store.MenuFile)
	}
	if cfg.Chat.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("unexpected default gemini model: %q", cfg.Chat.GeminiModel)
	}
	if cfg.UseR2() {
		t.Errorf("UseR2 should be false without credentials")
	}
}

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadFailsWithoutAdminCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without ADMIN_PASSWORD")
	}
}

func TestAllowedOriginsSplit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Server.AllowedOrigins) != 2 ||
		cfg.Server.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestUseR2RequiresAllCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("R2_ACCESS_KEY", "k")
	t.Setenv("R2_SECRET_KEY", "s")
	t.Setenv("R2_BUCKET_NAME", "b")
	t.Setenv("R2_ENDPOINT", "https://r2.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UseR2() {
		t.Fatalf("UseR2 should require the public base URL as well")
	}

	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")
	cfg, _ = Load()
	if !cfg.UseR2() {
		t.Fatalf("UseR2 should be true with all five credentials")
	}
}
