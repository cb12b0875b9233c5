package models

// Event is one row of a request's trail. Events are append-only; prior
// entries are never edited once recorded.
type Event struct {
	Action    string `bson:"action" json:"action"`
	User      string `bson:"user" json:"user"`
	Timestamp string `bson:"timestamp" json:"timestamp"`
	Note      string `bson:"note,omitempty" json:"note,omitempty"`
}

type Request struct {
	ID            string  `bson:"id" json:"id"`
	TicketNumber  string  `bson:"ticketNumber" json:"ticketNumber"`
	CounterName   string  `bson:"counterName" json:"counterName"`
	CounterNumber string  `bson:"counterNumber" json:"counterNumber"`
	ReceptionID   string  `bson:"receptionId" json:"receptionId"`
	Status        string  `bson:"status" json:"status"`
	Events        []Event `bson:"events" json:"events"`
	CreatedAt     string  `bson:"createdAt" json:"createdAt"`
}

const (
	StatusPending  = "Pending"
	StatusReturned = "Returned"
)
