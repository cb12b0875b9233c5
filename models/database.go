package models

// Database is the whole persisted document. Every operation loads it in full,
// mutates a copy and writes it back.
type Database struct {
	Users    []User          `bson:"users" json:"users"`
	Requests []Request       `bson:"requests" json:"requests"`
	Logs     []LogEntry      `bson:"logs" json:"logs"`
	DailyLog []DailyLogEntry `bson:"daily_log" json:"daily_log"`
}

// EmptyDatabase is the safe default returned when the backing data is missing
// or unreadable.
func EmptyDatabase() Database {
	return Database{
		Users:    []User{},
		Requests: []Request{},
		Logs:     []LogEntry{},
		DailyLog: []DailyLogEntry{},
	}
}
