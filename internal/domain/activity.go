package domain

import (
	"encoding/json"
	"time"
)

// ExerciseLog is one performed exercise.
type ExerciseLog struct {
	ID               int64     `db:"id"                json:"id"`
	UserID           int64     `db:"user_id"           json:"user_id"`
	ExerciseID       int64     `db:"exercise_id"       json:"exercise_id"`
	DatePerformed    time.Time `db:"date_performed"    json:"date_performed"`
	DurationMinutes  *int64    `db:"duration_minutes"  json:"duration_minutes"`
	SetsCompleted    *int64    `db:"sets_completed"    json:"sets_completed"`
	RepsCompleted    *int64    `db:"reps_completed"    json:"reps_completed"`
	WeightUsedKg     *float64  `db:"weight_used_kg"    json:"weight_used_kg"`
	CaloriesBurned   *int64    `db:"calories_burned"   json:"calories_burned"`
	DifficultyRating *int64    `db:"difficulty_rating" json:"difficulty_rating"`
	Notes            *string   `db:"notes"             json:"notes"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`

	Profile *ExerciseProfile `db:"-" json:"user_detail,omitempty"`
}

// RecordID returns the surrogate primary key.
func (l ExerciseLog) RecordID() int64 { return l.ID }

// ExerciseProfile is the profile subset shown with an exercise log.
type ExerciseProfile struct {
	Name         string `db:"name"          json:"name"`
	FitnessLevel string `db:"fitness_level" json:"fitness_level"`
}

// HealthActivityLog is one completed health activity (meditation, breathing, ...).
type HealthActivityLog struct {
	ID                  int64      `db:"id"                   json:"id"`
	UserID              int64      `db:"user_id"              json:"user_id"`
	HealthActivityID    int64      `db:"health_activity_id"   json:"health_activity_id"`
	DatePerformed       time.Time  `db:"date_performed"       json:"date_performed"`
	StartTime           *ClockTime `db:"start_time"           json:"start_time"`
	DurationMinutes     int64      `db:"duration_minutes"     json:"duration_minutes"`
	CompletionStatus    *string    `db:"completion_status"    json:"completion_status"`
	StressLevelBefore   *int64     `db:"stress_level_before"  json:"stress_level_before"`
	StressLevelAfter    *int64     `db:"stress_level_after"   json:"stress_level_after"`
	MoodBefore          *string    `db:"mood_before"          json:"mood_before"`
	MoodAfter           *string    `db:"mood_after"           json:"mood_after"`
	EffectivenessRating *int64     `db:"effectiveness_rating" json:"effectiveness_rating"`
	Notes               *string    `db:"notes"                json:"notes"`
	CreatedAt           time.Time  `db:"created_at"           json:"created_at"`

	Profile *HealthProfile `db:"-" json:"user_detail,omitempty"`
}

// RecordID returns the surrogate primary key.
func (l HealthActivityLog) RecordID() int64 { return l.ID }

// HealthProfile is the profile subset shown with a health activity log.
type HealthProfile struct {
	Name              string `db:"name"                json:"name"`
	PrimaryHealthGoal string `db:"primary_health_goal" json:"primary_health_goal"`
}

// NutritionLog is one consumed nutrition item.
type NutritionLog struct {
	ID            int64      `db:"id"             json:"id"`
	UserID        int64      `db:"user_id"        json:"user_id"`
	NutritionID   int64      `db:"nutrition_id"   json:"nutrition_id"`
	DateConsumed  time.Time  `db:"date_consumed"  json:"date_consumed"`
	MealTime      *ClockTime `db:"meal_time"      json:"meal_time"`
	ServingAmount float64    `db:"serving_amount" json:"serving_amount"`
	TotalCalories *float64   `db:"total_calories" json:"total_calories"`
	Notes         *string    `db:"notes"          json:"notes"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`

	Profile *NutritionProfile `db:"-" json:"user_detail,omitempty"`
}

// RecordID returns the surrogate primary key.
func (l NutritionLog) RecordID() int64 { return l.ID }

// NutritionProfile is the profile subset shown with a nutrition log.
type NutritionProfile struct {
	Name                string          `db:"name"                 json:"name"`
	DietaryPreferences  json.RawMessage `db:"dietary_preferences"  json:"dietary_preferences"`
	DietaryRestrictions json.RawMessage `db:"dietary_restrictions" json:"dietary_restrictions"`
}
