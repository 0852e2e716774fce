package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

const (
	ReviewAppendAtomic  = "atomic"
	ReviewAppendReplace = "replace"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"WEBUI_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"WEBUI_HTTP_PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type BookAPI struct {
	URL     string        `yaml:"url" envconfig:"BOOKREVIEW_API_URL" default:"http://localhost:5000/api/books"`
	Timeout time.Duration `yaml:"timeout" envconfig:"BOOKREVIEW_API_TIMEOUT" default:"10s"`
}

type Session struct {
	TTL         time.Duration `yaml:"ttl" envconfig:"WEBUI_SESSION_TTL" default:"30m"`
	MaxSessions int           `yaml:"maxSessions" envconfig:"WEBUI_MAX_SESSIONS" default:"10000"`
}

type Config struct {
	Server           HTTPServer `yaml:"server"`
	BookAPI          BookAPI    `yaml:"bookApi"`
	Session          Session    `yaml:"session"`
	ReviewAppendMode string     `yaml:"reviewAppendMode" envconfig:"REVIEW_APPEND_MODE" default:"atomic"`
	Log              logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		switch config.ReviewAppendMode {
		case ReviewAppendAtomic, ReviewAppendReplace:
		default:
			log.Fatalf("NewConfig: unknown REVIEW_APPEND_MODE %q", config.ReviewAppendMode)
		}
		cfg = &config
	})

	return cfg
}
