package record

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/compose"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/schema"
)

// UserAuthIDColumn is the generated public account identifier.
const UserAuthIDColumn = "user_auth_id"

// NewAccountService creates the account service. Every new account gets a
// generated user_auth_id.
func NewAccountService(log *slog.Logger, engine *coerce.Engine, repo Repository[domain.Account]) *Service[domain.Account] {
	s := NewService(log, schema.Account, engine, repo)
	s.prepare = func(values compose.Values) {
		values[UserAuthIDColumn] = NewUserAuthID(s.now())
	}
	return s
}

func NewProfileService(log *slog.Logger, engine *coerce.Engine, repo Repository[domain.Profile]) *Service[domain.Profile] {
	return NewService(log, schema.Profile, engine, repo)
}

func NewExerciseLogService(log *slog.Logger, engine *coerce.Engine, repo Repository[domain.ExerciseLog]) *Service[domain.ExerciseLog] {
	return NewService(log, schema.ExerciseLog, engine, repo)
}

func NewHealthLogService(log *slog.Logger, engine *coerce.Engine, repo Repository[domain.HealthActivityLog]) *Service[domain.HealthActivityLog] {
	return NewService(log, schema.HealthActivityLog, engine, repo)
}

func NewNutritionLogService(log *slog.Logger, engine *coerce.Engine, repo Repository[domain.NutritionLog]) *Service[domain.NutritionLog] {
	return NewService(log, schema.NutritionLog, engine, repo)
}

// NewUserAuthID returns an identifier of the form user_<unix-ms>_<8 hex>.
func NewUserAuthID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), suffix)
}
