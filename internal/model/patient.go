package model

type PatientRecord struct {
	ID        int64 `json:"id" db:"id"`
	IDUser    int64 `json:"id_user" db:"id_user"`
	IDAddress int64 `json:"id_address" db:"id_address"`
}

type Patient struct {
	PatientRecord
	UserInfo
	IDCenter int64   `json:"id_center" db:"id_center"`
	Address  Address `json:"address" db:"address"`
}

type NewPatient struct {
	NewUser
	Address NewAddress `json:"address"`
}

type UpdatePatient struct {
	UpdateUser
	Address *UpdateAddress `json:"address"`
}

func (u UpdatePatient) IsEmpty() bool {
	return u.UpdateUser.IsEmpty() && (u.Address == nil || u.Address.IsEmpty())
}
