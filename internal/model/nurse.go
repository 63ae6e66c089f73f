package model

type NurseRecord struct {
	ID             int64 `json:"id" db:"id"`
	MinutesPerWeek int32 `json:"minutes_per_week" db:"minutes_per_week"`
	IDUser         int64 `json:"id_user" db:"id_user"`
	IDAddress      int64 `json:"id_address" db:"id_address"`
}

// Nurse joins a nurses row with its user profile and address.
type Nurse struct {
	NurseRecord
	UserInfo
	IDCenter int64   `json:"id_center" db:"id_center"`
	Address  Address `json:"address" db:"address"`
}

type SkilledNurse struct {
	Nurse
	Skills []Skill `json:"skills"`
}

type NewNurse struct {
	MinutesPerWeek int32 `json:"minutes_per_week" binding:"min=0"`
	NewUser
	Address NewAddress `json:"address"`
}

type UpdateNurse struct {
	MinutesPerWeek *int32 `json:"minutes_per_week" binding:"omitempty,min=0"`
	UpdateUser
	Address *UpdateAddress `json:"address"`
}

func (u UpdateNurse) IsEmpty() bool {
	return u.MinutesPerWeek == nil && u.UpdateUser.IsEmpty() &&
		(u.Address == nil || u.Address.IsEmpty())
}

// Owned holds the ids of the rows a person record owns exclusively.
type Owned struct {
	IDUser    int64 `db:"id_user"`
	IDAddress int64 `db:"id_address"`
	IDCenter  int64 `db:"id_center"`
}
