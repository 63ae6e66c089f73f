package model

import "time"

type MissionType struct {
	ID              int64  `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	PeopleRequired  int16  `json:"people_required" db:"people_required"`
	MinutesDuration int32  `json:"minutes_duration" db:"minutes_duration"`
}

type NewMissionType struct {
	Name string `json:"name" binding:"required"`
	// Defaults to 1.
	PeopleRequired  *int16 `json:"people_required" binding:"omitempty,min=1"`
	MinutesDuration int32  `json:"minutes_duration" binding:"required,min=1"`
}

type UpdateMissionType struct {
	Name            *string `json:"name" binding:"omitempty,min=1"`
	PeopleRequired  *int16  `json:"people_required" binding:"omitempty,min=1"`
	MinutesDuration *int32  `json:"minutes_duration" binding:"omitempty,min=1"`
}

func (u UpdateMissionType) IsEmpty() bool {
	return u.Name == nil && u.PeopleRequired == nil && u.MinutesDuration == nil
}

// MissionRecord is a row of the missions table. A nil RecurrenceDays means
// the mission is not recurrent.
type MissionRecord struct {
	ID             int64     `json:"id" db:"id"`
	Desc           *string   `json:"desc" db:"desc"`
	Start          time.Time `json:"start" db:"start"`
	End            time.Time `json:"end" db:"end"`
	RecurrenceDays *int16    `json:"recurrence_days" db:"recurrence_days"`
	PeopleRequired int16     `json:"people_required" db:"people_required"`
	IDMissionType  int64     `json:"id_mission_type" db:"id_mission_type"`
	IDPatient      int64     `json:"id_patient" db:"id_patient"`
}

type Mission struct {
	MissionRecord
	MissionType MissionType `json:"mission_type" db:"mission_type"`
	Patient     Patient     `json:"patient" db:"patient"`
}

type NewMission struct {
	Desc           *string   `json:"desc"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required,gtfield=Start"`
	RecurrenceDays *int16    `json:"recurrence_days" binding:"omitempty,min=1"`
	// Defaults to 1.
	PeopleRequired *int16 `json:"people_required" binding:"omitempty,min=1"`
	IDMissionType  int64  `json:"id_mission_type" binding:"required"`
	IDPatient      int64  `json:"id_patient" binding:"required"`
}

// UpdateMission changes only the present fields. desc and recurrence_days
// accept an explicit null to clear them.
type UpdateMission struct {
	Desc           Nullable[string] `json:"desc"`
	Start          *time.Time       `json:"start"`
	End            *time.Time       `json:"end"`
	RecurrenceDays Nullable[int16]  `json:"recurrence_days"`
	PeopleRequired *int16           `json:"people_required" binding:"omitempty,min=1"`
	IDMissionType  *int64           `json:"id_mission_type"`
}

func (u UpdateMission) IsEmpty() bool {
	return !u.Desc.Set && u.Start == nil && u.End == nil && !u.RecurrenceDays.Set &&
		u.PeopleRequired == nil && u.IDMissionType == nil
}

// MissionSkill links a mission type to a skill it requires.
type MissionSkill struct {
	IDMissionType int64 `json:"id_mission_type" db:"id_mission_type"`
	IDSkill       int64 `json:"id_skill" db:"id_skill"`
	Preferred     *bool `json:"preferred" db:"preferred"`
}
