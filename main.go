package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"linkbio-backend/api"
	"linkbio-backend/database"
	"linkbio-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dbType := os.Getenv("DB_TYPE")
	var db *gorm.DB
	var err error

	fmt.Printf("DB_TYPE: %s\n", dbType)
	switch dbType {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "linkbio"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_SSLMODE", "disable"),
		)
		fmt.Println("Connecting to Postgres database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{Logger: newLogger})
	default:
		path := getEnv("DB_PATH", "linkbio.db")
		fmt.Printf("Connecting to SQLite database at %s...\n", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newLogger})
	}
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.Profile{}, &models.Link{}, &models.Lead{}); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
