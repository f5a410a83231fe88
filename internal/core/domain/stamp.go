package domain

import "time"

// Stamp records the content digest an artifact was last generated from.
type Stamp struct {
	Target      string
	Digest      string
	GeneratedAt time.Time
}
