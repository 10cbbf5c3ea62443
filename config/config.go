package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	StoreType  string // sqlite | jsonfile
	SQLitePath string
	DataDir    string
	UploadDir  string
	PDFDir     string
	Port       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		StoreType:  os.Getenv("STORE_TYPE"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		DataDir:    os.Getenv("DATA_DIR"),
		UploadDir:  os.Getenv("UPLOAD_DIR"),
		PDFDir:     os.Getenv("PDF_DIR"),
		Port:       os.Getenv("PORT"),
	}
	if cfg.StoreType == "" {
		cfg.StoreType = "sqlite"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "./data/pharma.db"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = "./pdfs"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
