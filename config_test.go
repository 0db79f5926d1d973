package main

import "testing"

func TestLoadConfigFromEnv(t *testing.T) {
	t.Cleanup(func() { configStore.Update(DefaultConfig()) })
	t.Setenv("JUMPCUBE_AI_LEVEL", "7")
	t.Setenv("JUMPCUBE_AI_TIME_LIMIT_MS", "500")
	t.Setenv("JUMPCUBE_AI_LOG_SEARCH_STATS", "true")

	LoadConfigFromEnv()
	cfg := GetConfig()
	if cfg.AiLevel != 7 {
		t.Fatalf("expected AiLevel 7, got %d", cfg.AiLevel)
	}
	if cfg.AiTimeLimitMs != 500 {
		t.Fatalf("expected AiTimeLimitMs 500, got %d", cfg.AiTimeLimitMs)
	}
	if !cfg.AiLogSearchStats {
		t.Fatalf("expected search stat logging enabled")
	}
	if cfg.AiTimeSafetyMs != DefaultConfig().AiTimeSafetyMs {
		t.Fatalf("unset variables must keep their defaults")
	}
}

func TestBadEnvValuesKeepDefaults(t *testing.T) {
	t.Cleanup(func() { configStore.Update(DefaultConfig()) })
	t.Setenv("JUMPCUBE_AI_LEVEL", "not-a-number")

	LoadConfigFromEnv()
	if got := GetConfig().AiLevel; got != DefaultConfig().AiLevel {
		t.Fatalf("expected the default level, got %d", got)
	}
}
