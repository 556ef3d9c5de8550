package assessments

import "time"

// Assessment is one recorded recommendation request.
type Assessment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PainLevel     int       `json:"painLevel"`
	MobilityLevel int       `json:"mobilityLevel"`
	Condition     string    `json:"condition"`
	Goals         []string  `json:"goals"`
	TopScore      float64   `json:"topScore"`
	ResultCount   int       `json:"resultCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
