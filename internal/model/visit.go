package model

import "time"

type VisitRecord struct {
	ID        int64     `json:"id" db:"id"`
	Start     time.Time `json:"start" db:"start"`
	End       time.Time `json:"end" db:"end"`
	IDMission int64     `json:"id_mission" db:"id_mission"`
}

type Visit struct {
	VisitRecord
	Mission Mission `json:"mission" db:"mission"`
}

type NewVisit struct {
	Start     time.Time `json:"start" binding:"required"`
	End       time.Time `json:"end" binding:"required,gtfield=Start"`
	IDMission int64     `json:"id_mission" binding:"required"`
}

type UpdateVisit struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func (u UpdateVisit) IsEmpty() bool {
	return u.Start == nil && u.End == nil
}

// Report is the assignment of a nurse to a visit, with the nurse's report.
type Report struct {
	IDVisit int64   `json:"id_visit" db:"id_visit"`
	IDNurse int64   `json:"id_nurse" db:"id_nurse"`
	Report  *string `json:"report" db:"report"`
}

type UpdateReport struct {
	Report *string `json:"report" binding:"required"`
}

type Availability struct {
	ID        int64     `json:"id" db:"id"`
	Start     time.Time `json:"start" db:"start"`
	End       time.Time `json:"end" db:"end"`
	Recurrent bool      `json:"recurrent" db:"recurrent"`
	IDNurse   int64     `json:"id_nurse" db:"id_nurse"`
}
