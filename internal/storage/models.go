package storage

import "time"

// SlotRecord is one named JSON payload with the schema version it was written in.
type SlotRecord struct {
	Slot          string
	SchemaVersion int
	Payload       []byte
	UpdatedAt     time.Time
}
