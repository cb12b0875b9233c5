package config

import (
	"log"
	"os"
	"time"

	"amerportal/models"
)

// Store is the persistence contract for the portal document. Load never fails
// the caller: missing or corrupt backing data degrades to an empty document.
// Save errors are reported so callers can log them, but handlers do not roll
// back the in-memory mutation they already produced.
type Store interface {
	Load() models.Database
	Save(models.Database) error
}

var DB Store

// ConnectDatabase wires the global store. The file backend is the default;
// set DB_BACKEND=mongo to keep the document in MongoDB instead.
func ConnectDatabase() {
	if os.Getenv("DB_BACKEND") == "mongo" {
		DB = ConnectMongoStore()
		log.Println("Connected to MongoDB")
		return
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "database.json"
	}
	DB = NewFileStore(path)
	log.Printf("Using file database at %s", path)
}

var defaultUsers = []models.User{
	{ID: "admin01", Email: "admin@amer.com", Password: "password123", Role: models.RoleAdmin, Username: "Chief Administrator"},
	{ID: "rec01", Email: "reception@amer.com", Password: "password123", Role: models.RoleReception, Username: "Fatima Al-Mansoori"},
	{ID: "count01", Email: "counter@amer.com", Password: "password123", Role: models.RoleCounter, Username: "Ahmed Al-Jaber"},
	{ID: "count02", Email: "counter2@amer.com", Password: "password123", Role: models.RoleCounter, Username: "Yusuf Ibrahim"},
}

// InitializeDatabase seeds the default accounts when the loaded document has
// no users, and records the seeding in the activity feed.
func InitializeDatabase() {
	db := DB.Load()
	if len(db.Users) > 0 {
		return
	}

	log.Println("No users found in database. Seeding default accounts.")
	db.Users = append(db.Users, defaultUsers...)
	entry := models.LogEntry{
		Message:   "Database initialized with default users.",
		User:      "System",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	db.Logs = append([]models.LogEntry{entry}, db.Logs...)

	if err := DB.Save(db); err != nil {
		log.Printf("Failed to seed database: %v", err)
	}
}
