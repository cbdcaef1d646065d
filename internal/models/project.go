package models

import (
	"gorm.io/datatypes"
)

// Project is a tree-planting initiative with an image gallery. Images holds
// public upload paths in upload order; updates only ever append to it.
type Project struct {
	BaseModel
	Name      string                      `gorm:"not null" json:"name"`
	TreeCount int                         `gorm:"not null" json:"trees"`
	Images    datatypes.JSONSlice[string] `json:"images"`
}
