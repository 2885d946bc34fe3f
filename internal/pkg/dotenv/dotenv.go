// Package dotenv подтягивает локальные .env файлы и флаги командной строки
// в окружение процесса до того, как его прочитает config.Load.
package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFile - файл, который ищется в рабочей директории.
const DefaultFile = ".env"

// Load читает существующие из перечисленных файлов (по умолчанию .env).
// Уже выставленные переменные окружения не перетираются.
// Возвращает false, если ни одного файла не нашлось.
func Load(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	existing := make([]string, 0, len(files))
	for _, file := range files {
		_, err := os.Stat(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", file, err)
		}
		existing = append(existing, file)
	}

	if len(existing) == 0 {
		return false, nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return false, fmt.Errorf("load %v: %w", existing, err)
	}
	return true, nil
}

// ApplyFlags переносит флаги -port и -log-level в окружение,
// флаг сильнее и переменной, и .env.
func ApplyFlags(name string, args []string) error {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	port := set.String("port", "", "Server port (overrides PORT environment variable)")
	logLevel := set.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")

	if err := set.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      *port,
		"LOG_LEVEL": *logLevel,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
