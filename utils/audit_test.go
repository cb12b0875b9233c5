package utils

import (
	"path/filepath"
	"testing"

	"amerportal/config"
	"amerportal/models"
)

func setupStore(t *testing.T) {
	t.Helper()
	config.DB = config.NewFileStore(filepath.Join(t.TempDir(), "database.json"))
}

func TestAddLogNewestFirst(t *testing.T) {
	setupStore(t)

	AddLog("first action", nil)
	user := models.User{ID: "count01", Username: "Ahmed Al-Jaber"}
	AddLog("second action", &user)

	logs := config.DB.Load().Logs
	if len(logs) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(logs))
	}
	if logs[0].Message != "second action" || logs[0].User != "Ahmed Al-Jaber" {
		t.Fatalf("newest entry wrong: %+v", logs[0])
	}
	if logs[1].Message != "first action" || logs[1].User != "System" {
		t.Fatalf("oldest entry wrong: %+v", logs[1])
	}
}

func TestUpdateDailyLogResolvesReception(t *testing.T) {
	setupStore(t)

	db := config.DB.Load()
	db.Users = append(db.Users, models.User{ID: "rec01", Username: "Fatima Al-Mansoori", Role: models.RoleReception})
	if err := config.DB.Save(db); err != nil {
		t.Fatal(err)
	}

	request := models.Request{
		ID:            "comp1",
		TicketNumber:  "T-100",
		CounterName:   "Ahmed Al-Jaber",
		CounterNumber: "3",
		ReceptionID:   "rec01",
	}
	UpdateDailyLog(request, "Completed", models.User{Username: "Fatima Al-Mansoori"})

	entries := config.DB.Load().DailyLog
	if len(entries) != 1 {
		t.Fatalf("expected 1 daily log entry, got %d", len(entries))
	}
	e := entries[0]
	if e.TaggedReception != "Fatima Al-Mansoori" {
		t.Errorf("taggedReception = %q, want resolved username", e.TaggedReception)
	}
	if e.FinalStatus != "Completed" || e.FinalActionBy != "Fatima Al-Mansoori" {
		t.Errorf("final disposition wrong: %+v", e)
	}
	if e.CounterNumber != "3" || e.CreatedBy != "Ahmed Al-Jaber" {
		t.Errorf("origin fields wrong: %+v", e)
	}
}

func TestUpdateDailyLogFallbacks(t *testing.T) {
	setupStore(t)

	request := models.Request{ID: "comp2", TicketNumber: "T-200", ReceptionID: "ghost"}
	UpdateDailyLog(request, "Returned", models.User{Username: "Chief Administrator"})

	entries := config.DB.Load().DailyLog
	if len(entries) != 1 {
		t.Fatalf("expected 1 daily log entry, got %d", len(entries))
	}
	if entries[0].TaggedReception != "N/A" {
		t.Errorf("taggedReception = %q, want N/A for unresolved reception", entries[0].TaggedReception)
	}
	if entries[0].CounterNumber != "N/A" {
		t.Errorf("counterNumber = %q, want N/A when missing", entries[0].CounterNumber)
	}
}

func TestUpdateDailyLogUpsertsByTicketNumber(t *testing.T) {
	setupStore(t)

	request := models.Request{ID: "comp3", TicketNumber: "T-300", CounterNumber: "1"}
	UpdateDailyLog(request, "Returned", models.User{Username: "Fatima Al-Mansoori"})

	// Same ticket number reprocessed: the earlier row must be replaced.
	request.ID = "comp4"
	UpdateDailyLog(request, "Completed", models.User{Username: "Chief Administrator"})

	entries := config.DB.Load().DailyLog
	if len(entries) != 1 {
		t.Fatalf("expected 1 daily log entry after upsert, got %d", len(entries))
	}
	if entries[0].FinalStatus != "Completed" || entries[0].FinalActionBy != "Chief Administrator" {
		t.Fatalf("upsert kept the stale entry: %+v", entries[0])
	}
}
