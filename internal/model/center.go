package model

// Center is an organisational unit. Workday bounds are time of day values
// formatted as HH:MM:SS.
type Center struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Desc         *string `json:"desc" db:"desc"`
	WorkdayStart string  `json:"workday_start" db:"workday_start"`
	WorkdayEnd   string  `json:"workday_end" db:"workday_end"`
	RangeKm      int16   `json:"range_km" db:"range_km"`
	IDAddress    int64   `json:"id_address" db:"id_address"`
}

type Zone struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	IDCenter int64  `json:"id_center" db:"id_center"`
}

// NewZone is always created in the caller's center.
type NewZone struct {
	Name string `json:"name" binding:"required"`
}

type UpdateZone struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}
