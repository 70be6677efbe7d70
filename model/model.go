package model

import (
	"time"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
)

type BaseModel struct {
	ID        uuid.UUID `gorm:"type:VARCHAR(36);primary_key;" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate will set ID field with a UUID value rather than numeric value.
func (base *BaseModel) BeforeCreate(scope *gorm.Scope) error {
	if base.ID != uuid.Nil {
		return nil
	}
	return scope.SetColumn("ID", uuid.NewV4())
}
