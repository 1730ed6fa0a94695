package model

import (
	"time"

	"gorm.io/datatypes"
)

// Profile holds the résumé header of a user; one per user
type Profile struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"not null;uniqueIndex"`
	FirstName string     `json:"firstName" gorm:"type:varchar(255);not null"`
	LastName  string     `json:"lastName" gorm:"type:varchar(255);not null"`
	Phone     *string    `json:"phone" gorm:"type:varchar(50)"`
	Location  *string    `json:"location" gorm:"type:varchar(255)"`
	Bio       *string    `json:"bio" gorm:"type:text"`
	Skills    StringList `json:"skills"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// WorkExperience is one employment entry of a user
type WorkExperience struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"userId" gorm:"not null;index"`
	Company     string          `json:"company" gorm:"type:varchar(255);not null"`
	Position    string          `json:"position" gorm:"type:varchar(255);not null"`
	StartDate   datatypes.Date  `json:"startDate" gorm:"not null"`
	EndDate     *datatypes.Date `json:"endDate"`
	Current     bool            `json:"current" gorm:"not null;default:false"`
	Description *string         `json:"description" gorm:"type:text"`
}

// TableName keeps the singular table name
func (WorkExperience) TableName() string {
	return "work_experience"
}

// Education is one degree entry of a user
type Education struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"userId" gorm:"not null;index"`
	Institution string          `json:"institution" gorm:"type:varchar(255);not null"`
	Degree      string          `json:"degree" gorm:"type:varchar(255);not null"`
	Field       string          `json:"field" gorm:"type:varchar(255);not null"`
	StartDate   datatypes.Date  `json:"startDate" gorm:"not null"`
	EndDate     *datatypes.Date `json:"endDate"`
	Current     bool            `json:"current" gorm:"not null;default:false"`
}

// TableName keeps the singular table name
func (Education) TableName() string {
	return "education"
}

// ProfileDetail is a profile together with its experience and education entries
type ProfileDetail struct {
	Profile
	Experience []WorkExperience `json:"experience"`
	Education  []Education      `json:"education"`
}

// All lists every model managed by migrations
func All() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
		&WorkExperience{},
		&Education{},
		&JobPosting{},
		&Application{},
		&Feedback{},
	}
}
