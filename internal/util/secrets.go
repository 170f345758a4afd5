package util

import (
	"fmt"
	"os"
)

type DbSecrets struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
}

func (s DbSecrets) ToConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s",
		s.User, s.Password, s.Host, s.Port, s.DbName,
	)
}

type Secrets struct {
	Db              DbSecrets
	CoinGeckoApiKey string
	ChatGPTApiKey   string
	JwtSecret       string
}

// LoadSecrets reads everything from the environment. Only the db
// settings are required to boot; the gpt key and jwt secret gate
// optional features and are checked where they're used.
func LoadSecrets() (*Secrets, error) {
	db := DbSecrets{
		Host:     os.Getenv("COINDASH_DB_HOST"),
		Port:     os.Getenv("COINDASH_DB_PORT"),
		User:     os.Getenv("COINDASH_DB_USER"),
		Password: os.Getenv("COINDASH_DB_PASSWORD"),
		DbName:   os.Getenv("COINDASH_DB_NAME"),
	}
	if db.Host == "" || db.User == "" || db.DbName == "" {
		return nil, fmt.Errorf("missing db secrets: host=%q user=%q dbname=%q", db.Host, db.User, db.DbName)
	}
	if db.Port == "" {
		db.Port = "5432"
	}

	return &Secrets{
		Db:              db,
		CoinGeckoApiKey: os.Getenv("COINGECKO_API_KEY"),
		ChatGPTApiKey:   os.Getenv("CHATGPT_API_KEY"),
		JwtSecret:       os.Getenv("COINDASH_JWT_SECRET"),
	}, nil
}
