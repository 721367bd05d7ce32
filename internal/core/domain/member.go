package domain

import "time"

// Employee is a directory row listed by the Members endpoint.
type Employee struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      *string    `json:"name"`
	Surname   *string    `json:"surname"`
	Email     *string    `json:"email"`
	CreatedAt *time.Time `json:"created_at"`
}

// ProjectMember links an employee to a project.
type ProjectMember struct {
	ProjectID int64     `json:"project_id" gorm:"primaryKey;autoIncrement:false"`
	UserID    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	AddedAt   time.Time `json:"added_at"`

	Project  *Project  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Employee *Employee `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
