package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB         ConfigDB         `yaml:"db"`
	CfgES         ConfigES         `yaml:"es"`
	CfgChain      ConfigChain      `yaml:"chain"`
	CfgKafka      ConfigKafka      `yaml:"kafka"`
	CfgAnonymizer ConfigAnonymizer `yaml:"anonymizer"`
	// postgres | redis | file
	StorageBackend string `yaml:"storage_backend"`
	FileStorageDir string `yaml:"file_storage_dir"`
	RedisAddr      string `yaml:"redis_addr"`
	MaxOpenConns   int    `yaml:"max_open_conns"`
	ServerPort     string `yaml:"srv_port"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigES struct {
	URL   string `yaml:"url"`
	Index string `yaml:"index"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
	GroupID string   `yaml:"group_id"`
}

type ConfigChain struct {
	RPCURL          string `yaml:"rpc_url"`
	ContractAddress string `yaml:"contract_address"`
}

type ConfigAnonymizer struct {
	DelayMin    time.Duration `yaml:"delay_min"`
	DelayMax    time.Duration `yaml:"delay_max"`
	WindowStart time.Time     `yaml:"window_start"`
}

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

	// Переменные окружения сильнее файла
	if addr := os.Getenv("CONTRACT_ADDRESS"); addr != "" {
		c.CfgChain.ContractAddress = addr
	}

	return &c, nil
}

// DSN - строка подключения к Postgres. Переменная окружения DATABASE_URL
// имеет приоритет над файлом конфигурации; пустой результат означает,
// что база не настроена и сервис деградирует до файлового хранилища.
func (c *Config) DSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	if c.CfgDB.Host == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)
}
