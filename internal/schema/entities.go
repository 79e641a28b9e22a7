package schema

// Account is the user_authentication entity.
var Account = &Entity{
	Name:  "account",
	Table: "user_authentication",
	Fields: []Field{
		{Name: "email", Kind: String, Required: true},
		{Name: "password_hash", Kind: Secret, Required: true},
	},
}

// Profile is the user_detail entity.
var Profile = &Entity{
	Name:  "profile",
	Table: "user_detail",
	Fields: []Field{
		{Name: "user_id", Kind: RequiredInt, Required: true, Positive: true, Immutable: true},
		{Name: "name", Kind: String, Required: true},
		{Name: "date_of_birth", Kind: RequiredDate, Required: true},
		{Name: "gender", Kind: String, Required: true},
		{Name: "primary_health_goal", Kind: String, Required: true},
		{Name: "specific_fitness_goals", Kind: OptionalStructured},
		{Name: "fitness_level", Kind: String, Required: true},
		{Name: "exercise_status", Kind: String, Required: true},
		{Name: "phone", Kind: String},
		{Name: "allergies", Kind: OptionalStructured},
		{Name: "preferred_workout_time", Kind: String},
		{Name: "available_equipment", Kind: OptionalStructured},
		{Name: "dietary_preferences", Kind: OptionalStructured},
		{Name: "dietary_restrictions", Kind: OptionalStructured},
		{Name: "current_stat_id", Kind: OptionalInt},
		{Name: "preferred_nutrition_plan_id", Kind: OptionalInt},
		{Name: "preferred_health_activity_id", Kind: OptionalInt},
		{Name: "preferred_exercise_routine_id", Kind: OptionalInt},
		{Name: "profile_picture_url", Kind: String},
		{Name: "timezone", Kind: String},
		{Name: "language_preference", Kind: String},
		{Name: "notification_preferences", Kind: OptionalStructured},
		{Name: "privacy_settings", Kind: OptionalStructured},
		{Name: "subscription_type", Kind: String},
	},
	OwnerColumn:     "user_id",
	OrderColumn:     "created_at",
	TracksUpdatedAt: true,
}

// ExerciseLog is the user_exercise_log entity.
var ExerciseLog = &Entity{
	Name:  "exercise log",
	Table: "user_exercise_log",
	Fields: []Field{
		{Name: "user_id", Kind: RequiredInt, Required: true, Positive: true, Immutable: true},
		{Name: "exercise_id", Kind: RequiredInt, Required: true, Positive: true},
		{Name: "date_performed", Kind: RequiredDate, Required: true},
		{Name: "duration_minutes", Kind: OptionalInt32},
		{Name: "sets_completed", Kind: OptionalInt32},
		{Name: "reps_completed", Kind: OptionalInt32},
		{Name: "weight_used_kg", Kind: OptionalFloat},
		{Name: "calories_burned", Kind: OptionalInt32},
		{Name: "difficulty_rating", Kind: OptionalInt32},
		{Name: "notes", Kind: String},
	},
	OwnerColumn: "user_id",
	OrderColumn: "date_performed",
}

// HealthActivityLog is the user_health_log entity.
var HealthActivityLog = &Entity{
	Name:  "health log",
	Table: "user_health_log",
	Fields: []Field{
		{Name: "user_id", Kind: RequiredInt, Required: true, Positive: true, Immutable: true},
		{Name: "health_activity_id", Kind: RequiredInt, Required: true, Positive: true},
		{Name: "date_performed", Kind: RequiredDate, Required: true},
		{Name: "start_time", Kind: OptionalTimeOfDay},
		{Name: "duration_minutes", Kind: RequiredInt32, Required: true, Positive: true},
		{Name: "completion_status", Kind: String},
		{Name: "stress_level_before", Kind: OptionalInt32},
		{Name: "stress_level_after", Kind: OptionalInt32},
		{Name: "mood_before", Kind: String},
		{Name: "mood_after", Kind: String},
		{Name: "effectiveness_rating", Kind: OptionalInt32},
		{Name: "notes", Kind: String},
	},
	OwnerColumn: "user_id",
	OrderColumn: "date_performed",
}

// NutritionLog is the user_nutrition_log entity.
var NutritionLog = &Entity{
	Name:  "nutrition log",
	Table: "user_nutrition_log",
	Fields: []Field{
		{Name: "user_id", Kind: RequiredInt, Required: true, Positive: true, Immutable: true},
		{Name: "nutrition_id", Kind: RequiredInt, Required: true, Positive: true},
		{Name: "date_consumed", Kind: RequiredDate, Required: true},
		{Name: "meal_time", Kind: OptionalTimeOfDay},
		{Name: "serving_amount", Kind: OptionalFloat, CreateDefault: 1.0},
		{Name: "total_calories", Kind: OptionalFloat},
		{Name: "notes", Kind: String},
	},
	OwnerColumn: "user_id",
	OrderColumn: "date_consumed",
}

// All lists every registered entity.
func All() []*Entity {
	return []*Entity{Account, Profile, ExerciseLog, HealthActivityLog, NutritionLog}
}
