package model

type Skill struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type NewSkill struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSkill struct {
	Name string `json:"name" binding:"required"`
}
