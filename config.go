package main

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	// AiLevel is the search depth new automated players start at.
	AiLevel int `json:"ai_level"`
	// AiTimeLimitMs bounds one move decision; zero disables the budget.
	AiTimeLimitMs int `json:"ai_time_limit_ms"`
	// AiTimeSafetyMs is shaved off the budget so the search unwinds before
	// the limit actually lands.
	AiTimeSafetyMs int `json:"ai_time_safety_ms"`
	// AiTimeCheckInterval is how many time checks pass between wall clock
	// samples.
	AiTimeCheckInterval int  `json:"ai_time_check_interval"`
	AiLogSearchStats    bool `json:"ai_log_search_stats"`
}

func DefaultConfig() Config {
	return Config{
		AiLevel:             4,
		AiTimeLimitMs:       15000,
		AiTimeSafetyMs:      2000,
		AiTimeCheckInterval: 10000,
		AiLogSearchStats:    false,
	}
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

// LoadConfigFromEnv applies environment overrides on top of the defaults,
// reading a .env file first when one exists.
func LoadConfigFromEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[backend] could not load .env file: %v", err)
	}
	cfg := configStore.Get()
	cfg.AiLevel = envInt("JUMPCUBE_AI_LEVEL", cfg.AiLevel)
	cfg.AiTimeLimitMs = envInt("JUMPCUBE_AI_TIME_LIMIT_MS", cfg.AiTimeLimitMs)
	cfg.AiTimeSafetyMs = envInt("JUMPCUBE_AI_TIME_SAFETY_MS", cfg.AiTimeSafetyMs)
	cfg.AiLogSearchStats = envBool("JUMPCUBE_AI_LOG_SEARCH_STATS", cfg.AiLogSearchStats)
	configStore.Update(cfg)
}

// ListenAddr returns the HTTP listen address, honoring JUMPCUBE_ADDR.
func ListenAddr() string {
	if addr := os.Getenv("JUMPCUBE_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[backend] ignoring %s=%q: %v", name, raw, err)
		return fallback
	}
	return value
}

func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[backend] ignoring %s=%q: %v", name, raw, err)
		return fallback
	}
	return value
}
