package models

import "time"

// AcademicYear 学年
// ClosureDate 之后不再接受新创意, FinalClosureDate 之后评论也关闭
type AcademicYear struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name             string    `gorm:"type:varchar(32);uniqueIndex:uk_academic_years_name;not null" json:"name"`
	StartDate        time.Time `json:"start_date"`
	ClosureDate      time.Time `json:"closure_date"`
	FinalClosureDate time.Time `json:"final_closure_date"`
	Status           int8      `gorm:"type:tinyint;default:1" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AcademicYear) TableName() string {
	return "academic_years"
}
