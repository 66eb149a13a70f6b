package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_NAME", "TAX_RATE_PERCENT", "DISCOUNT_AMOUNT", "REDIS_ADDR", "REDIS_DB", "SEARCH_CACHE_TTL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.StoreName != "Supermarket POS System" {
		t.Fatalf("unexpected default store name %q", cfg.StoreName)
	}
	if cfg.TaxRatePercent != 0 || cfg.DiscountAmount != 0 {
		t.Fatalf("expected zero tax and discount, got %+v", cfg)
	}
	if cfg.RedisAddr != "" || cfg.RedisDB != 0 {
		t.Fatalf("expected redis disabled by default, got %+v", cfg)
	}
	if cfg.SearchCacheTTLSeconds != 20 {
		t.Fatalf("expected default ttl 20, got %d", cfg.SearchCacheTTLSeconds)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_NAME", "Corner Shop")
	t.Setenv("TAX_RATE_PERCENT", "8.5")
	t.Setenv("DISCOUNT_AMOUNT", "1.25")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEARCH_CACHE_TTL_SECONDS", "60")

	cfg := Load()
	if cfg.StoreName != "Corner Shop" {
		t.Fatalf("unexpected store name %q", cfg.StoreName)
	}
	if cfg.TaxRatePercent != 8.5 || cfg.DiscountAmount != 1.25 {
		t.Fatalf("unexpected amounts: %+v", cfg)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
	if cfg.SearchCacheTTLSeconds != 60 {
		t.Fatalf("unexpected ttl %d", cfg.SearchCacheTTLSeconds)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("TAX_RATE_PERCENT", "150")
	t.Setenv("DISCOUNT_AMOUNT", "-3")
	t.Setenv("SEARCH_CACHE_TTL_SECONDS", "nope")

	cfg := Load()
	if cfg.TaxRatePercent != 0 {
		t.Fatalf("tax rate above 100 must fall back to 0, got %.2f", cfg.TaxRatePercent)
	}
	if cfg.DiscountAmount != 0 {
		t.Fatalf("negative discount must fall back to 0, got %.2f", cfg.DiscountAmount)
	}
	if cfg.SearchCacheTTLSeconds != 20 {
		t.Fatalf("unparsable ttl must fall back to 20, got %d", cfg.SearchCacheTTLSeconds)
	}
}
