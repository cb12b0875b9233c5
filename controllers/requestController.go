package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"amerportal/config"
	"amerportal/models"
	"amerportal/utils"
)

// requestData is the allow-list of caller-supplied fields for a new request.
// Anything else on the payload is dropped.
type requestData struct {
	TicketNumber  string `json:"ticketNumber"`
	CounterName   string `json:"counterName"`
	CounterNumber string `json:"counterNumber"`
	ReceptionID   string `json:"receptionId"`
	Status        string `json:"status"`
}

type createRequestInput struct {
	RequestData requestData `json:"requestData"`
	User        models.User `json:"user"`
}

type statusUpdateInput struct {
	Status string      `json:"status"`
	User   models.User `json:"user"`
	Note   string      `json:"note"`
}

type deleteRequestInput struct {
	User        models.User `json:"user"`
	FinalStatus string      `json:"finalStatus"`
}

func CreateRequest(c *gin.Context) {
	var input createRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	now := utils.NowISO()
	request := models.Request{
		ID:            utils.NewRequestID(),
		TicketNumber:  input.RequestData.TicketNumber,
		CounterName:   input.RequestData.CounterName,
		CounterNumber: input.RequestData.CounterNumber,
		ReceptionID:   input.RequestData.ReceptionID,
		Status:        input.RequestData.Status,
		CreatedAt:     now,
		Events: []models.Event{
			{Action: "Created", User: input.User.Username, Timestamp: now},
		},
	}

	db := config.DB.Load()
	db.Requests = append([]models.Request{request}, db.Requests...)
	if err := config.DB.Save(db); err != nil {
		log.Printf("Failed to persist new request: %v", err)
	}

	utils.AddLog(fmt.Sprintf("Created request for ticket %s from Counter %s.", request.TicketNumber, request.CounterNumber), &input.User)
	c.JSON(http.StatusCreated, request)
}

// eventActionFor maps a status change to the action recorded on the ticket's
// event trail. Statuses outside the two routing states record an empty
// action; that fallback is pinned by tests rather than rejected.
func eventActionFor(status, note, counterNumber string) string {
	switch {
	case status == models.StatusReturned:
		return "Returned by Reception"
	case status == models.StatusPending && note != "":
		return fmt.Sprintf("Returned to Reception (from C%s)", counterNumber)
	case status == models.StatusPending:
		return "Return Cancelled"
	default:
		return ""
	}
}

func UpdateRequestStatus(c *gin.Context) {
	id := c.Param("id")
	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	db := config.DB.Load()
	for i := range db.Requests {
		if db.Requests[i].ID != id {
			continue
		}

		db.Requests[i].Status = input.Status
		action := eventActionFor(input.Status, input.Note, db.Requests[i].CounterNumber)
		event := models.Event{Action: action, User: input.User.Username, Timestamp: utils.NowISO()}
		if input.Note != "" {
			event.Note = input.Note
		}
		db.Requests[i].Events = append(db.Requests[i].Events, event)
		updated := db.Requests[i]

		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist status update: %v", err)
		}
		utils.AddLog(fmt.Sprintf("%s for ticket %s.", action, updated.TicketNumber), &input.User)
		c.JSON(http.StatusOK, updated)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Request not found."})
}

// DeleteRequest finalizes a ticket: the request is removed and its final
// disposition lands in the daily log. Removal and the daily-log upsert are
// two separate load/save cycles; a crash in between loses the daily-log side
// effect but never the removal.
func DeleteRequest(c *gin.Context) {
	id := c.Param("id")
	var input deleteRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	db := config.DB.Load()
	for i := range db.Requests {
		if db.Requests[i].ID != id {
			continue
		}

		removed := db.Requests[i]
		db.Requests = append(db.Requests[:i], db.Requests[i+1:]...)
		if err := config.DB.Save(db); err != nil {
			log.Printf("Failed to persist request removal: %v", err)
		}

		utils.UpdateDailyLog(removed, input.FinalStatus, input.User)
		utils.AddLog(fmt.Sprintf("%s request for ticket %s.", input.FinalStatus, removed.TicketNumber), &input.User)

		c.JSON(http.StatusOK, gin.H{"message": "Request removed successfully."})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Request not found."})
}
