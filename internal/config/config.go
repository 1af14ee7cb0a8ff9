// Package config 提供配置加载和管理功能
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	PokeAPI       PokeAPIConfig       `yaml:"pokeapi" mapstructure:"pokeapi"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
	Debug   bool   `yaml:"debug" mapstructure:"debug"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// PokeAPIConfig 宝可梦图鉴目录服务配置
type PokeAPIConfig struct {
	// BaseURL 目录服务基础地址，可被环境变量覆盖
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout 单次数据请求超时
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// UserAgent 请求标识
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
}

// CacheConfig 进程内缓存配置
type CacheConfig struct {
	// TTL 缓存条目有效期
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
	// MaxEntries 容量上限，超出按 LRU 淘汰
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
}

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	APIKey      string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string        `yaml:"base_url" mapstructure:"base_url"`
	Model       string        `yaml:"model" mapstructure:"model"`
	MaxTokens   int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64       `yaml:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// DefaultProvider 返回默认 LLM 提供商配置
func (c *LLMConfig) DefaultProviderConfig() (ProviderConfig, error) {
	name := strings.TrimSpace(c.DefaultProvider)
	if name == "" {
		return ProviderConfig{}, fmt.Errorf("llm default provider not configured")
	}
	p, ok := c.Providers[name]
	if !ok {
		return ProviderConfig{}, fmt.Errorf("llm provider not found: %s", name)
	}
	return p, nil
}

// ValidateLLM 校验 LLM 配置，API key 缺失视为致命错误
func (c *Config) ValidateLLM() error {
	p, err := c.LLM.DefaultProviderConfig()
	if err != nil {
		return err
	}
	if strings.TrimSpace(p.APIKey) == "" {
		return fmt.Errorf("llm api key is required (provider %s)", c.LLM.DefaultProvider)
	}
	return nil
}
