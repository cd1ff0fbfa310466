package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Config reúne toda a configuração do serviço.
// Valores vêm de env vars (ou .env em dev) com defaults razoáveis.
type Config struct {
	HTTPPort string `conf:"default:8080,env:HTTP_PORT"`

	// Persistência local dos snapshots. Se DATABASE_URL estiver setado,
	// usa Postgres; senão SQLite no arquivo indicado.
	SnapshotPath string `conf:"default:unisovet.db,env:SNAPSHOT_PATH"`
	DatabaseURL  string `conf:"env:DATABASE_URL,noprint"`

	// Assistente virtual (API generativa). Sem API key o assistente
	// responde com a mensagem de indisponibilidade, nunca derruba o processo.
	GeminiAPIKey  string `conf:"env:GEMINI_API_KEY,noprint"`
	GeminiModel   string `conf:"default:gemini-2.5-flash,env:GEMINI_MODEL"`
	GeminiBaseURL string `conf:"default:https://generativelanguage.googleapis.com,env:GEMINI_BASE_URL"`

	LogLevel  string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat string `conf:"default:text,env:LOG_FORMAT"`

	// Origens permitidas para o front (separadas por vírgula; * libera tudo, só dev).
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, help, err := parse()
	if err != nil {
		// -h / --help não é erro: imprime o usage e encerra limpo.
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			os.Exit(0)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func parse() (*Config, string, error) {
	var cfg Config
	help, err := conf.Parse("", &cfg)
	if err != nil {
		return nil, help, err
	}
	return &cfg, "", nil
}
