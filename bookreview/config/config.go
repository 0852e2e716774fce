package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/mongo"
	"github.com/kelseyhightower/envconfig"
)

const (
	ValidationLenient = "lenient"
	ValidationStrict  = "strict"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"PORT" default:"5000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
	RateLimit    float64       `yaml:"rateLimit" envconfig:"HTTP_RATE_LIMIT"`
}

type Config struct {
	Server         HTTPServer   `yaml:"server"`
	Database       mongo.DB     `yaml:"db"`
	Kafka          kafka.Config `yaml:"kafka"`
	Log            logger.Log   `yaml:"log"`
	ValidationMode string       `yaml:"validationMode" envconfig:"VALIDATION_MODE" default:"lenient"`
}

func (c *Config) StrictValidation() bool {
	return c.ValidationMode == ValidationStrict
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
		switch config.ValidationMode {
		case ValidationLenient, ValidationStrict:
		default:
			log.Fatalf("NewConfig: unknown VALIDATION_MODE %q", config.ValidationMode)
		}
		cfg = &config
	})

	return cfg
}
