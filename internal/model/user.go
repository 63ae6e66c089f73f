package model

import "github.com/jwalitptl/homecare-api/pkg/auth"

// UserInfo is the public profile stored in the users table. It is embedded
// in nurses, managers and patients. password, token and token_gentime are
// never selected.
type UserInfo struct {
	FirstName string  `json:"fname" db:"fname"`
	LastName  string  `json:"lname" db:"lname"`
	Mail      string  `json:"mail" db:"mail"`
	Phone     *string `json:"phone" db:"phone"`
}

// User is a users row without its secrets.
type User struct {
	ID int64 `json:"id" db:"id"`
	UserInfo
	IDCenter int64 `json:"id_center" db:"id_center"`
}

type NewUser struct {
	FirstName string  `json:"fname" binding:"required"`
	LastName  string  `json:"lname" binding:"required"`
	Mail      string  `json:"mail" binding:"required,email"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	IDCenter  int64   `json:"id_center" binding:"required"`
}

type UpdateUser struct {
	FirstName *string `json:"fname" binding:"omitempty,min=1"`
	LastName  *string `json:"lname" binding:"omitempty,min=1"`
	Mail      *string `json:"mail" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
}

func (u UpdateUser) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Mail == nil && u.Phone == nil
}

type LoginUser struct {
	Mail     string `json:"mail" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoggedUser is returned by login and /auth/info.
type LoggedUser struct {
	ID int64 `json:"id" db:"id"`
	UserInfo
	Role     auth.Role `json:"role"`
	IDCenter int64     `json:"id_center"`
	IDZone   *int64    `json:"id_zone"`
}

// Identity is what login needs to issue a credential for a user.
type Identity struct {
	SubjectID int64
	Role      auth.Role
	IDCenter  int64
	IDZone    *int64
}
