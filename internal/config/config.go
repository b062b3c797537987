package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Store struct {
		Driver   string // "dynamodb" or "sqlite"
		Table    string
		Region   string
		Endpoint string
		Path     string
	}
	Mail struct {
		Driver string // "ses" or "smtp"
		Sender string
		SMTP   struct {
			Host string
			Port string
			User string
			Pass string
		}
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("REGISTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("store.table", "")
	v.SetDefault("store.region", "us-east-1")
	v.SetDefault("store.endpoint", "")
	v.SetDefault("store.path", "data/registro.db")
	v.SetDefault("mail.driver", "ses")
	v.SetDefault("mail.sender", "")
	v.SetDefault("mail.smtp.host", "")
	v.SetDefault("mail.smtp.port", "")
	v.SetDefault("mail.smtp.user", "")
	v.SetDefault("mail.smtp.pass", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
