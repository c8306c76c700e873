package insights

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"monad-feedback/internal/app"
)

type Config struct {
	CfgDB        app.ConfigDB    `yaml:"db"`
	CfgES        app.ConfigES    `yaml:"es"`
	CfgKafka     app.ConfigKafka `yaml:"kafka"`
	ETLInterval  time.Duration   `yaml:"etl_interval"`
	MaxOpenConns int             `yaml:"max_open_conns"`
	ServerPort   string          `yaml:"srv_port"`
}

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

	return &cfg, nil
}
