package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"amerportal/config"
	"amerportal/models"
)

func TestBackupDatabase(t *testing.T) {
	setupStore(t)
	dir := t.TempDir()
	t.Setenv("BACKUP_DIR", dir)

	db := config.DB.Load()
	db.Users = append(db.Users, models.User{ID: "u1", Username: "User One"})
	if err := config.DB.Save(db); err != nil {
		t.Fatal(err)
	}

	BackupDatabase()

	path := filepath.Join(dir, fmt.Sprintf("portal-%s.json", time.Now().UTC().Format("2006-01-02")))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backup file not written: %v", err)
	}

	var snapshot models.Database
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	if len(snapshot.Users) != 1 || snapshot.Users[0].ID != "u1" {
		t.Fatalf("backup does not contain the current document: %+v", snapshot.Users)
	}
}
