// Package validation rejects bad user input before any store command runs.
package validation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/imaan/internal/constants"
)

// ImaanInput is a self-rated imaan level
type ImaanInput struct {
	Level int `validate:"min=0,max=10"`
}

// QuranInput carries Quran reading progress
type QuranInput struct {
	Pages   int `validate:"min=0"`
	Minutes int `validate:"min=0"`
}

// DhikrInput is how many counts to add in one go
type DhikrInput struct {
	Times int `validate:"min=1,max=10000"`
}

type PrayerInput struct {
	Name string `validate:"required,prayer"`
}

type DeedInput struct {
	Description string `validate:"required,max=500"`
}

type DonationInput struct {
	Amount      float64 `validate:"finite,gt=0"`
	Description string  `validate:"required,max=500"`
}

type NoteInput struct {
	Title   string   `validate:"required,max=200"`
	Content string   `validate:"required"`
	Tags    []string `validate:"dive,required,max=50"`
}

type GoalInput struct {
	Title    string `validate:"required,max=200"`
	Category string `validate:"required,goalcategory"`
	Target   int    `validate:"gt=0"`
	Deadline string `validate:"required,datetime=2006-01-02"`
}

type ProgressInput struct {
	Current int `validate:"min=0"`
}

// Validator checks input structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the prayer, goalcategory and finite rules
// registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return isFinite(fl.Field().Float())
	})
	_ = v.RegisterValidation("prayer", func(fl validator.FieldLevel) bool {
		return slices.Contains(constants.PrayerNames, fl.Field().String())
	})
	_ = v.RegisterValidation("goalcategory", func(fl validator.FieldLevel) bool {
		return slices.Contains(constants.GoalCategories, constants.GoalCategory(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// Struct validates input and returns a readable error naming every failed field
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "prayer":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(constants.PrayerNames, ", "))
	case "goalcategory":
		names := make([]string, len(constants.GoalCategories))
		for i, c := range constants.GoalCategories {
			names[i] = string(c)
		}
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// ParseInt parses a whole number typed by the user
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// ParseAmount parses a donation amount typed by the user. Infinities and NaN
// are rejected since they cannot be stored as JSON.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if !isFinite(f) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// ParseTags splits a comma separated tag list, dropping blanks and duplicates
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag != "" && !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NormalizePrayerName maps case-insensitive input to the canonical prayer name.
// Unknown names are returned unchanged.
func NormalizePrayerName(name string) string {
	for _, p := range constants.PrayerNames {
		if strings.EqualFold(p, strings.TrimSpace(name)) {
			return p
		}
	}
	return name
}
