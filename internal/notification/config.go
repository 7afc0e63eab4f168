package notification

import (
	"os"

	"melodia/internal/app"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB        app.ConfigDB    `yaml:"db"`
	CfgKafka     app.ConfigKafka `yaml:"kafka"`
	MaxOpenConns int             `yaml:"max_open_conns"`
	ServerPort   string          `yaml:"srv_port"`
}

const (
	defaultGroupID    = "melodia-notifier"
	defaultTopic      = "melodia-events"
	defaultServerPort = ":8082"
)

func NewConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.CfgKafka.GroupID == "" {
		cfg.CfgKafka.GroupID = defaultGroupID
	}
	if cfg.CfgKafka.Topic == "" {
		cfg.CfgKafka.Topic = defaultTopic
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}

	return &cfg, nil
}
