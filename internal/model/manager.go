package model

type ManagerRecord struct {
	ID       int64 `json:"id" db:"id"`
	IDUser   int64 `json:"id_user" db:"id_user"`
	IDCenter int64 `json:"id_center" db:"id_center"`
}

type Manager struct {
	ManagerRecord
	UserInfo
}

// NewManager creates the user and the manager in the user's center.
type NewManager struct {
	NewUser
}
