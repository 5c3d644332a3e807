package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fuelapi/internal/config"
	"fuelapi/internal/models"
	"fuelapi/internal/repository"
)

// Inserts an operator account. There is no registration endpoint; users
// are provisioned out of band with this tool.
func main() {
	username := flag.String("username", "", "operator username")
	password := flag.String("password", "", "operator password")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *username == "" || *password == "" {
		logger.Fatal("Both -username and -password are required")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repository.MigrateDB(db, logger)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("Failed to hash password", zap.Error(err))
	}

	user := &models.User{Username: *username, PasswordHash: string(hash)}
	authRepo := repository.NewAuthRepository(db, logger)
	if err := authRepo.CreateUser(user); err != nil {
		logger.Fatal("Failed to create user", zap.Error(err))
	}

	logger.Info("Operator created", zap.Int64("id", user.ID), zap.String("username", user.Username))
}
