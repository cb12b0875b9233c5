package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"amerportal/config"
)

// BackupDatabase writes a dated snapshot of the current document to the
// backup directory. Scheduled once a day from main; a rerun on the same day
// overwrites that day's snapshot.
func BackupDatabase() {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Failed to create backup directory: %v", err)
		return
	}

	db := config.DB.Load()
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		log.Printf("Failed to encode backup: %v", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("portal-%s.json", time.Now().UTC().Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Failed to write backup: %v", err)
		return
	}
	log.Printf("Database backup written to %s", path)
}
