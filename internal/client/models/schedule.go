package models

import (
	"fmt"
	"time"
)

// Wave is the shift a worker takes on a given day.
type Wave string

const (
	WaveEntry Wave = "ENTRY"
	WaveOff   Wave = "OFF"
)

func (w Wave) Valid() bool {
	return w == WaveEntry || w == WaveOff
}

func ParseWave(s string) (Wave, error) {
	w := Wave(s)
	if !w.Valid() {
		return "", fmt.Errorf("invalid wave %q: want %s or %s", s, WaveEntry, WaveOff)
	}
	return w, nil
}

type ScheduleStatus string

const (
	StatusPending  ScheduleStatus = "PENDING"
	StatusApproved ScheduleStatus = "APPROVED"
	StatusRejected ScheduleStatus = "REJECTED"
)

// WeekWaves holds one wave per weekday.
type WeekWaves struct {
	Monday    Wave `json:"mondayWave"`
	Tuesday   Wave `json:"tuesdayWave"`
	Wednesday Wave `json:"wednesdayWave"`
	Thursday  Wave `json:"thursdayWave"`
	Friday    Wave `json:"fridayWave"`
	Saturday  Wave `json:"saturdayWave"`
	Sunday    Wave `json:"sundayWave"`
}

// DayWave pairs a weekday with its wave.
type DayWave struct {
	Day  time.Weekday
	Wave Wave
}

// Days lists the waves in Sunday..Saturday order.
func (w WeekWaves) Days() []DayWave {
	return []DayWave{
		{time.Sunday, w.Sunday},
		{time.Monday, w.Monday},
		{time.Tuesday, w.Tuesday},
		{time.Wednesday, w.Wednesday},
		{time.Thursday, w.Thursday},
		{time.Friday, w.Friday},
		{time.Saturday, w.Saturday},
	}
}

// Validate reports the first day whose wave is not ENTRY or OFF.
func (w WeekWaves) Validate() error {
	for _, d := range w.Days() {
		if !d.Wave.Valid() {
			return fmt.Errorf("%s: invalid wave %q", d.Day, d.Wave)
		}
	}
	return nil
}

// EntryDays counts the days with an ENTRY wave.
func (w WeekWaves) EntryDays() int {
	n := 0
	for _, d := range w.Days() {
		if d.Wave == WaveEntry {
			n++
		}
	}
	return n
}

// WorkSchedule is a weekly schedule submitted by a worker for approval.
type WorkSchedule struct {
	ID          int64          `json:"id"`
	WorkspaceID int64          `json:"workspaceId"`
	CreatedBy   int64          `json:"createdBy"`
	Status      ScheduleStatus `json:"status"`
	WeekWaves
	ApprovedBy     *int64    `json:"approvedBy"`
	RejectedReason *string   `json:"rejectedReason"`
	Year           int       `json:"year"`
	Week           int       `json:"week"`
	CreatedAt      Timestamp `json:"createdAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`
	ApprovedAt     Timestamp `json:"approvedAt"`
}

// Period renders the schedule's ISO year and week, e.g. 2025-W07.
func (s WorkSchedule) Period() string {
	return fmt.Sprintf("%d-W%02d", s.Year, s.Week)
}

// RejectRequest is the body of a reject call. An empty reason is omitted so
// the body becomes {}.
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}
