package seed

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pageza/moodbites/backend/internal/models"
)

// Record is one recipe as written in a seed file
type Record struct {
	Name         string `json:"name" yaml:"name" validate:"required,max=255"`
	Ingredients  string `json:"ingredients" yaml:"ingredients" validate:"required"`
	Instructions string `json:"instructions" yaml:"instructions" validate:"required"`
	Mood         string `json:"mood" yaml:"mood" validate:"required,max=50"`
	PrepTime     int    `json:"prep_time" yaml:"prep_time" validate:"gte=0"`
	Difficulty   string `json:"difficulty" yaml:"difficulty" validate:"oneof=easy medium hard"`
	Dietary      string `json:"dietary" yaml:"dietary" validate:"oneof=vegan vegetarian meat"`
}

// ToModel converts a validated record to a storable recipe
func (r Record) ToModel() models.Recipe {
	return models.Recipe{
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Mood:         r.Mood,
		PrepTime:     r.PrepTime,
		Difficulty:   models.Difficulty(r.Difficulty),
		Dietary:      models.Dietary(r.Dietary),
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRecords checks every record and reports all failures at once
func ValidateRecords(records []Record) error {
	var problems []string
	for i, r := range records {
		err := getValidator().Struct(r)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("record %d: %w", i, err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("record %d (%q): field %s failed %s", i, r.Name, fe.Field(), describeTag(fe)))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid seed records:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}
