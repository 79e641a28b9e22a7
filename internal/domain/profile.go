package domain

import (
	"encoding/json"
	"time"
)

// Profile is a user_detail row. Structured columns are opaque JSON documents.
type Profile struct {
	ID                         int64           `db:"id"                            json:"id"`
	UserID                     int64           `db:"user_id"                       json:"user_id"`
	Name                       string          `db:"name"                          json:"name"`
	DateOfBirth                time.Time       `db:"date_of_birth"                 json:"date_of_birth"`
	Gender                     string          `db:"gender"                        json:"gender"`
	PrimaryHealthGoal          string          `db:"primary_health_goal"           json:"primary_health_goal"`
	SpecificFitnessGoals       json.RawMessage `db:"specific_fitness_goals"        json:"specific_fitness_goals"`
	FitnessLevel               string          `db:"fitness_level"                 json:"fitness_level"`
	ExerciseStatus             string          `db:"exercise_status"               json:"exercise_status"`
	Phone                      *string         `db:"phone"                         json:"phone"`
	Allergies                  json.RawMessage `db:"allergies"                     json:"allergies"`
	PreferredWorkoutTime       *string         `db:"preferred_workout_time"        json:"preferred_workout_time"`
	AvailableEquipment         json.RawMessage `db:"available_equipment"           json:"available_equipment"`
	DietaryPreferences         json.RawMessage `db:"dietary_preferences"           json:"dietary_preferences"`
	DietaryRestrictions        json.RawMessage `db:"dietary_restrictions"          json:"dietary_restrictions"`
	CurrentStatID              *int64          `db:"current_stat_id"               json:"current_stat_id"`
	PreferredNutritionPlanID   *int64          `db:"preferred_nutrition_plan_id"   json:"preferred_nutrition_plan_id"`
	PreferredHealthActivityID  *int64          `db:"preferred_health_activity_id"  json:"preferred_health_activity_id"`
	PreferredExerciseRoutineID *int64          `db:"preferred_exercise_routine_id" json:"preferred_exercise_routine_id"`
	ProfilePictureURL          *string         `db:"profile_picture_url"           json:"profile_picture_url"`
	Timezone                   *string         `db:"timezone"                      json:"timezone"`
	LanguagePreference         *string         `db:"language_preference"           json:"language_preference"`
	NotificationPreferences    json.RawMessage `db:"notification_preferences"      json:"notification_preferences"`
	PrivacySettings            json.RawMessage `db:"privacy_settings"              json:"privacy_settings"`
	SubscriptionType           *string         `db:"subscription_type"             json:"subscription_type"`
	CreatedAt                  time.Time       `db:"created_at"                    json:"created_at"`
	UpdatedAt                  time.Time       `db:"updated_at"                    json:"updated_at"`

	// Account is only populated by single-record lookups.
	Account *AccountSummary `db:"-" json:"user_authentication,omitempty"`
}

// RecordID returns the surrogate primary key.
func (p Profile) RecordID() int64 { return p.ID }
