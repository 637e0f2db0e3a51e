package models

import "time"

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

var Severities = []Severity{SeverityMild, SeverityModerate, SeveritySevere}

type InjuryStatus string

const (
	InjuryActive    InjuryStatus = "Active"
	InjuryRecovered InjuryStatus = "Recovered"
)

var InjuryStatuses = []InjuryStatus{InjuryActive, InjuryRecovered}

// InjuryTypes lists the selectable injury classifications.
var InjuryTypes = []string{
	"Sprain",
	"Strain",
	"Fracture",
	"Dislocation",
	"Tendonitis",
	"Bursitis",
	"Contusion",
	"Laceration",
	"Concussion",
	"Other",
}

// BodyParts lists the selectable body locations.
var BodyParts = []string{
	"Ankle",
	"Knee",
	"Hip",
	"Lower Back",
	"Upper Back",
	"Shoulder",
	"Elbow",
	"Wrist",
	"Hand",
	"Neck",
	"Head",
	"Foot",
	"Chest",
	"Abdomen",
	"Other",
}

// Injury is one recorded injury with its recovery status.
type Injury struct {
	ID           int          `json:"id,omitempty"`
	UserID       int          `json:"userId"`
	InjuryType   string       `json:"injuryType"`
	BodyPart     string       `json:"bodyPart"`
	DateOccurred time.Time    `json:"dateOccurred"`
	Severity     Severity     `json:"severity"`
	Status       InjuryStatus `json:"status"`
	Notes        string       `json:"notes,omitempty"`
}
