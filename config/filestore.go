package config

import (
	"encoding/json"
	"log"
	"os"

	"amerportal/models"
)

// FileStore keeps the whole document as one indent-encoded JSON file,
// rewritten in full on every save. There is no locking: two handlers racing
// load-mutate-save can lose the earlier write (last writer wins).
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() models.Database {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not read database file: %v", err)
		}
		return models.EmptyDatabase()
	}

	var db models.Database
	if err := json.Unmarshal(data, &db); err != nil {
		log.Printf("Could not parse database file: %v", err)
		return models.EmptyDatabase()
	}
	return db
}

func (s *FileStore) Save(db models.Database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
