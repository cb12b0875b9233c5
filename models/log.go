package models

// LogEntry is one row of the global activity feed, kept newest first.
type LogEntry struct {
	Message   string `bson:"message" json:"message"`
	User      string `bson:"user" json:"user"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
}

// DailyLogEntry records a ticket's final disposition. The daily log holds at
// most one entry per ticket number.
type DailyLogEntry struct {
	Date            string `bson:"date" json:"date"`
	TicketNumber    string `bson:"ticketNumber" json:"ticketNumber"`
	CreatedBy       string `bson:"createdBy" json:"createdBy"`
	CounterNumber   string `bson:"counterNumber" json:"counterNumber"`
	TaggedReception string `bson:"taggedReception" json:"taggedReception"`
	FinalStatus     string `bson:"finalStatus" json:"finalStatus"`
	FinalActionBy   string `bson:"finalActionBy" json:"finalActionBy"`
	FinalTimestamp  string `bson:"finalTimestamp" json:"finalTimestamp"`
}
