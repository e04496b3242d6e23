package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the service reads.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	TTS     TTSConfig
	Sandbox SandboxConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	tts, err := loadTTSConfig()
	if err != nil {
		return nil, err
	}

	sandbox, err := loadSandboxConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, TTS: tts, Sandbox: sandbox}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the language-model backend: Gemini reached through its
// OpenAI-compatible endpoint.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	TopP        float32
	MaxTokens   int
	Timeout     time.Duration
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel constructs the chat model with the configured sampling bounds.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("missing Gemini credentials: set GEMINI_API_KEY")
	}

	temperature := c.Temperature
	topP := c.TopP
	maxTokens := c.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	})
	if err != nil {
		return nil, err
	}
	return chatModel, nil
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloat32Env("GEMINI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	temp := float32(0.7)
	if temperature != nil {
		temp = *temperature
	}

	topPOverride, err := parseOptionalFloat32Env("GEMINI_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}
	topP := float32(0.8)
	if topPOverride != nil {
		topP = *topPOverride
	}

	maxTokensOverride, err := parseOptionalIntEnv("GEMINI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	maxTokens := 2048
	if maxTokensOverride != nil {
		maxTokens = *maxTokensOverride
	}

	timeout, err := parseOptionalIntEnv("CHAT_TIMEOUT_SECONDS")
	if err != nil {
		return AIConfig{}, err
	}
	timeoutSeconds := 25
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		BaseURL:     getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		Temperature: temp,
		TopP:        topP,
		MaxTokens:   maxTokens,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// TTSConfig describes the Gemini text-to-speech endpoint.
type TTSConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Enabled reports whether TTS credentials are present.
func (c TTSConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadTTSConfig() (TTSConfig, error) {
	timeout, err := parseOptionalIntEnv("TTS_TIMEOUT_SECONDS")
	if err != nil {
		return TTSConfig{}, err
	}
	timeoutSeconds := 10
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return TTSConfig{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:   getEnvOrDefault("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// SandboxConfig describes the JDoodle code-execution backend.
type SandboxConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
}

// Enabled reports whether JDoodle credentials are present.
func (c SandboxConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func loadSandboxConfig() (SandboxConfig, error) {
	timeout, err := parseOptionalIntEnv("JDOODLE_TIMEOUT_SECONDS")
	if err != nil {
		return SandboxConfig{}, err
	}
	timeoutSeconds := 20
	if timeout != nil {
		timeoutSeconds = *timeout
	}

	return SandboxConfig{
		ClientID:     strings.TrimSpace(os.Getenv("JDOODLE_CLIENT_ID")),
		ClientSecret: strings.TrimSpace(os.Getenv("JDOODLE_CLIENT_SECRET")),
		BaseURL:      getEnvOrDefault("JDOODLE_BASE_URL", "https://api.jdoodle.com/v1/execute"),
		Timeout:      time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloat32Env(key string) (*float32, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	result := float32(val)
	return &result, nil
}
