package utils

import (
	"log"
	"time"

	"amerportal/config"
	"amerportal/models"
)

// AddLog prepends an activity entry to the global feed. Actions with no
// acting user are attributed to "System".
func AddLog(message string, user *models.User) {
	db := config.DB.Load()

	username := "System"
	if user != nil {
		username = user.Username
	}
	entry := models.LogEntry{Message: message, User: username, Timestamp: NowISO()}
	db.Logs = append([]models.LogEntry{entry}, db.Logs...)

	if err := config.DB.Save(db); err != nil {
		log.Printf("Failed to write activity log: %v", err)
	}
}

// UpdateDailyLog records the final disposition of a ticket. The daily log
// keeps at most one row per ticket number: a reprocessed ticket replaces its
// previous entry.
func UpdateDailyLog(request models.Request, finalStatus string, finalUser models.User) {
	db := config.DB.Load()

	taggedReception := "N/A"
	for _, u := range db.Users {
		if u.ID == request.ReceptionID {
			taggedReception = u.Username
			break
		}
	}

	counterNumber := request.CounterNumber
	if counterNumber == "" {
		counterNumber = "N/A"
	}

	entry := models.DailyLogEntry{
		Date:            time.Now().UTC().Format("2006-01-02"),
		TicketNumber:    request.TicketNumber,
		CreatedBy:       request.CounterName,
		CounterNumber:   counterNumber,
		TaggedReception: taggedReception,
		FinalStatus:     finalStatus,
		FinalActionBy:   finalUser.Username,
		FinalTimestamp:  NowISO(),
	}

	var kept []models.DailyLogEntry
	for _, e := range db.DailyLog {
		if e.TicketNumber != request.TicketNumber {
			kept = append(kept, e)
		}
	}
	db.DailyLog = append(kept, entry)

	if err := config.DB.Save(db); err != nil {
		log.Printf("Failed to update daily log: %v", err)
	}
}
