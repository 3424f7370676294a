package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Store    StoreConfig    `yaml:"store"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
	GinMode    string `yaml:"gin_mode"`
}

// GRPCConfig enables the gRPC health and reflection listener when Address is set.
type GRPCConfig struct {
	Address string `yaml:"address"`
}

// StoreConfig selects the backing store. Driver is "mongo" or "postgres".
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig enables the city list cache when Addr is set.
type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	CitiesTTLSecond int    `yaml:"cities_ttl_seconds"`
}

// KafkaConfig enables ticket events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	TicketTopic        string   `yaml:"ticket_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AuthConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type CatalogConfig struct {
	SeedCities []string `yaml:"seed_cities"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultSeedCities is the list inserted by the seed endpoint when the
// config does not override it.
var DefaultSeedCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Ahmedabad", "Chennai", "Kolkata",
	"Surat", "Pune", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
}

func Default() Config {
	return Config{
		HTTP:  HTTPConfig{Address: ":10000", GinMode: "release"},
		GRPC:  GRPCConfig{Address: ":10001"},
		Store: StoreConfig{Driver: DriverMongo},
		Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "Air"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "air",
			SSLMode: "disable",
		},
		Redis: RedisConfig{CitiesTTLSecond: 300},
		Kafka: KafkaConfig{
			TicketTopic:        "tickets",
			NotificationsTopic: "ticket_notifications",
			GroupID:            "airticket-worker",
		},
		Auth:    AuthConfig{BcryptCost: 10},
		Catalog: CatalogConfig{SeedCities: DefaultSeedCities},
		Log:     LogConfig{Level: "info", Format: "console"},
	}
}

// LoadConfig reads the YAML file at path on top of Default. A missing file
// is not an error. PORT and MONGODB_URI override the file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTP.Address = ":" + port
	}
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range", c.Auth.BcryptCost)
	}
	return nil
}
