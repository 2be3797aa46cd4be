package entity

import "time"

const (
	DemoMetadataID      = "demo-metadata"
	DemoMetadataVersion = "1.0.0"
)

// DemoMetadata is the singleton summary written at the end of every seed run.
type DemoMetadata struct {
	Base        `bson:",inline"`
	Version     string         `json:"version" bson:"version"`
	LastReset   time.Time      `json:"last_reset" bson:"last_reset"`
	DataSummary map[string]int `json:"data_summary" bson:"data_summary"`
}
