package model

import (
	"fmt"
	"strings"
)

type Address struct {
	ID         int64   `json:"id" db:"id"`
	Number     *int32  `json:"number" db:"number"`
	StreetName string  `json:"street_name" db:"street_name"`
	Postcode   string  `json:"postcode" db:"postcode"`
	CityName   string  `json:"city_name" db:"city_name"`
	Complement *string `json:"complement" db:"complement"`
	IDZone     int64   `json:"id_zone" db:"id_zone"`
}

// String formats the address on one line, as used for calendar locations.
func (a Address) String() string {
	var b strings.Builder
	if a.Number != nil {
		fmt.Fprintf(&b, "%d ", *a.Number)
	}
	b.WriteString(a.StreetName)
	if a.Complement != nil && *a.Complement != "" {
		b.WriteString(", ")
		b.WriteString(*a.Complement)
	}
	fmt.Fprintf(&b, ", %s %s", a.Postcode, a.CityName)
	return b.String()
}

type NewAddress struct {
	Number     *int32  `json:"number"`
	StreetName string  `json:"street_name" binding:"required"`
	Postcode   string  `json:"postcode" binding:"required"`
	CityName   string  `json:"city_name" binding:"required"`
	Complement *string `json:"complement"`
	IDZone     int64   `json:"id_zone" binding:"required"`
}

// UpdateAddress changes only the present fields. number and complement
// accept an explicit null to clear them.
type UpdateAddress struct {
	Number     Nullable[int32]  `json:"number"`
	StreetName *string          `json:"street_name" binding:"omitempty,min=1"`
	Postcode   *string          `json:"postcode" binding:"omitempty,min=1"`
	CityName   *string          `json:"city_name" binding:"omitempty,min=1"`
	Complement Nullable[string] `json:"complement"`
	IDZone     *int64           `json:"id_zone"`
}

func (u UpdateAddress) IsEmpty() bool {
	return !u.Number.Set && u.StreetName == nil && u.Postcode == nil &&
		u.CityName == nil && !u.Complement.Set && u.IDZone == nil
}
