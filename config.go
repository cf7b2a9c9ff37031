package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is resolved once at startup from the environment.
type Config struct {
	Port        string
	BaseURL     string
	FniEndpoint string
	MatchPolicy MatchPolicy
	VocabFile   string
}

// LoadEnv pulls in a .env file when present; system env always wins.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func LoadConfig() Config {
	policy, err := ParseMatchPolicy(os.Getenv("MATCH_POLICY"))
	if err != nil {
		log.Printf("%v, falling back to %q", err, policy)
	}

	return Config{
		Port:        getEnv("PORT", "8060"),
		BaseURL:     getEnv("FNI_BASE_URL", "https://sysprosystembackend-develop-hybyc7adhkh4cgfy.eastus-01.azurewebsites.net"),
		FniEndpoint: getEnv("FNI_ENDPOINT", "/api/v1/FNI"),
		MatchPolicy: policy,
		VocabFile:   os.Getenv("VOCAB_FILE"),
	}
}
