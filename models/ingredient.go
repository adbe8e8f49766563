package models

// Ingredient is immutable reference data, loaded from external fixtures.
// The fixtures may carry duplicate (name, unit) rows; the shopping list
// aggregator merges those by grouping on name and unit instead of id.
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	Name            string `json:"name" gorm:"not null;size:50;index"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;size:20"`
}
