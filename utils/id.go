package utils

import (
	"fmt"
	"time"
)

// NowISO returns the current UTC time in the wire format used everywhere in
// the document.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func NewRequestID() string {
	return fmt.Sprintf("comp%d", time.Now().UnixMilli())
}

func NewUserID() string {
	return fmt.Sprintf("user%d", time.Now().UnixMilli())
}
