package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty is how hard a recipe is to prepare
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Dietary classifies a recipe by what it contains
type Dietary string

const (
	DietaryVegan      Dietary = "vegan"
	DietaryVegetarian Dietary = "vegetarian"
	DietaryMeat       Dietary = "meat"
)

// Recipe is a single dish tagged with exactly one mood.
// Ingredients are stored as one ", " delimited string and instructions as
// newline separated steps.
type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Ingredients  string     `gorm:"type:text;not null" json:"ingredients"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	Mood         string     `gorm:"size:50;not null;index" json:"mood"`
	PrepTime     int        `gorm:"not null;default:0" json:"prep_time"`
	Difficulty   Difficulty `gorm:"size:20" json:"difficulty"`
	Dietary      Dietary    `gorm:"size:20" json:"dietary"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// BeforeCreate assigns the identifier on insert
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
