package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB           ConfigDB      `yaml:"db"`
	CfgES           ConfigES      `yaml:"es"`
	CfgRedis        ConfigRedis   `yaml:"redis"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	ETLInterval     time.Duration `yaml:"etl_interval"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	Secret          string        `yaml:"secret"`
	ServerPort      string        `yaml:"srv_port"`
	SessionDuration time.Duration `yaml:"session_duration"`
	LikeGuardTTL    time.Duration `yaml:"like_guard_ttl"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigES struct {
	Addresses []string `yaml:"addresses"`
	Index     string   `yaml:"index"`
}

type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

const (
	defaultServerPort      = ":8080"
	defaultSessionDuration = 24 * time.Hour
	defaultLikeGuardTTL    = 5 * time.Second
	defaultETLInterval     = time.Minute
	defaultIndex           = "feedback"
	defaultTopic           = "melodia-events"
)

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	c.setDefaults()

	return &c, nil
}

func (c *Config) setDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = defaultServerPort
	}
	if c.SessionDuration == 0 {
		c.SessionDuration = defaultSessionDuration
	}
	if c.LikeGuardTTL == 0 {
		c.LikeGuardTTL = defaultLikeGuardTTL
	}
	if c.ETLInterval == 0 {
		c.ETLInterval = defaultETLInterval
	}
	if c.CfgES.Index == "" {
		c.CfgES.Index = defaultIndex
	}
	if c.CfgKafka.Topic == "" {
		c.CfgKafka.Topic = defaultTopic
	}
}

// DSN builds the lib/pq connection string.
func (db ConfigDB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		db.Host, db.Port, db.Login, db.Password, db.Database,
	)
}
