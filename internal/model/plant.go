package model

import (
	"time"
)

// Plant is one row of the plant master extract.
type Plant struct {
	Code    string
	Name    string
	Region  string
	Country string

	CoreFilename    string
	CoreProcessdate time.Time
}
