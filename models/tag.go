package models

import (
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null;size:10"`
	Color     string         `json:"color" gorm:"uniqueIndex;not null;size:100"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null;size:10"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
