package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone - таймзона сервиса, проставляется в NewConfig
// Используется для нормализации дат без таймзоны
var TimeZone *time.Location = time.Local

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Asia/Karachi"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	CalendarApi struct {
		URL      string `env:"CALENDAR_API_URL"`
		Username string `env:"CALENDAR_API_USERNAME"`
		Password string `env:"CALENDAR_API_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"calendar_svc:calendar_svc"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled     bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri     string `env:"RABBITMQ_URI"`
		QueueConfig struct {
			BookingQueueName      string `env:"RABBITMQ_BOOKING_QUEUE" envDefault:"psc.calendar-svc.booking.cache"`
			BookingQueueExchange  string `env:"RABBITMQ_BOOKING_EXCHANGE" envDefault:"psc.cache"`
			BookingQueueBind      string `env:"RABBITMQ_BOOKING_BIND" envDefault:"psc-api.calendar-svc.booking.cache.*"`
			FacilityQueueName     string `env:"RABBITMQ_FACILITY_QUEUE" envDefault:"psc.calendar-svc.facility.cache"`
			FacilityQueueExchange string `env:"RABBITMQ_FACILITY_EXCHANGE" envDefault:"psc.cache"`
			FacilityQueueBind     string `env:"RABBITMQ_FACILITY_BIND" envDefault:"psc-api.calendar-svc.facility.cache.*"`
			AllQueueName          string `env:"RABBITMQ_ALL_QUEUE" envDefault:"psc.calendar-svc._all_.cache"`
			AllQueueExchange      string `env:"RABBITMQ_ALL_EXCHANGE" envDefault:"psc.cache"`
			AllQueueBind          string `env:"RABBITMQ_ALL_BIND" envDefault:"psc-api.calendar-svc._all_.cache.*"`
		}
	}

	Cache struct {
		Enabled        bool          `env:"CACHE_ENABLED"`
		FacilitiesSize int           `env:"CACHE_FACILITIES_SIZE" envDefault:"256"`
		FacilitiesTtl  time.Duration `env:"CACHE_FACILITIES_TTL" envDefault:"5m"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Резолвим таймзону один раз на старте
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}
	TimeZone = loc

	// Разбираем список basic-клиентов вида user1:pass1,user2:pass2
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Без RabbitMQ кэш не инвалидируется, поэтому не включаем его
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
