package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBUser                 string `env:"DB_USER" envDefault:"root"`
	DBPassword             string `env:"DB_PASSWORD" envDefault:""`
	DBHost                 string `env:"DB_HOST" envDefault:"127.0.0.1"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME" envDefault:"talk_to_myself"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	DifyBaseURL string `env:"DIFY_API_BASE_URL" envDefault:"https://api.dify.ai/v1"`
	DifyAPIKey  string `env:"DIFY_API_KEY" envDefault:""`

	CompletionBaseURL string `env:"COMPLETION_API_BASE" envDefault:"https://api.lingyiwanwu.com/v1"`
	CompletionAPIKey  string `env:"COMPLETION_API_KEY" envDefault:""`
	CompletionModel   string `env:"COMPLETION_MODEL" envDefault:"yi-large"`

	WeChatAppID     string `env:"WECHAT_APP_ID" envDefault:""`
	WeChatAppSecret string `env:"WECHAT_APP_SECRET" envDefault:""`

	SummaryCronEnabled bool `env:"SUMMARY_CRON_ENABLED" envDefault:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
