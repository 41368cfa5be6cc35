package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Difficulty string
	BotName    string
	LogLevel   string
	LogPretty  bool
	LogFile    string
}

var AppConfig *Config

func LoadConfig() *Config {
	difficulty := strings.ToLower(GetEnv("CONNECT4_DIFFICULTY", "hard"))
	switch difficulty {
	case "easy", "medium", "hard":
	default:
		log.Printf("Unknown difficulty %q, using hard", difficulty)
		difficulty = "hard"
	}

	AppConfig = &Config{
		Difficulty: difficulty,
		BotName:    GetEnv("CONNECT4_BOT_NAME", ""),
		LogLevel:   GetEnv("LOG_LEVEL", "info"),
		LogPretty:  GetEnvAsBool("LOG_PRETTY", true),
		// the tview UI owns the terminal, so logs go to a file
		LogFile: GetEnv("LOG_FILE", "connect4.log"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
