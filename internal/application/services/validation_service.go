package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/domain/schema"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
	"github.com/shiftdesk/backend/pkg/fieldtypes"
)

// ValidationService checks candidate record values against the table's
// current schema. Presence of required values is a separate, UI-facing
// check (MissingRequired); Validate itself is about type compatibility.
type ValidationService struct {
	cfg     *schema.Config
	schemas *persistence.SchemaRepository
}

// NewValidationService creates a new ValidationService
func NewValidationService(cfg *schema.Config, schemas *persistence.SchemaRepository) *ValidationService {
	return &ValidationService{cfg: cfg, schemas: schemas}
}

// MissingRequired returns, in schema order, the required columns whose
// supplied value is empty. The UI layer runs this before Validate so the
// user sees all unfilled fields at once.
func (s *ValidationService) MissingRequired(ctx context.Context, table string, values models.RecordValues) ([]string, error) {
	columns, err := s.schemas.GetColumns(ctx, table)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, col := range columns {
		if !col.Required {
			continue
		}
		if IsValueEmpty(values[col.Name]) {
			missing = append(missing, col.Name)
		}
	}
	return missing, nil
}

// IsValueEmpty reports whether a value counts as unfilled for the
// required-field check: nil, whitespace-only text, the zero time, or
// numeric zero.
func IsValueEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case time.Time:
		return val.IsZero()
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	default:
		return false
	}
}

// Validate checks every supplied value for type compatibility against the
// table's current schema and returns a normalized copy of the values; the
// argument map is never mutated. All failures are collected so the caller
// can present them together.
//
// Rules, per column present in the candidate map:
//  1. the column must exist in the table's schema;
//  2. time-of-day override columns accept only a timestamp;
//  3. null passes unconditionally (presence is MissingRequired's job);
//  4. a decimal assigned to an integer column is coerced, not rejected —
//     user-input controls commonly yield decimal-shaped values there;
//  5. otherwise the runtime type must equal the semantic type's native
//     representation.
func (s *ValidationService) Validate(ctx context.Context, table string, values models.RecordValues) (models.RecordValues, error) {
	columns, err := s.schemas.GetColumns(ctx, table)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]models.ColumnDescriptor, len(columns))
	for _, col := range columns {
		byName[strings.ToLower(col.Name)] = col
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	normalized := values.Clone()
	var failures apperrors.ValidationErrors

	for _, name := range names {
		value := values[name]

		col, ok := byName[strings.ToLower(name)]
		if !ok {
			failures = append(failures, apperrors.NewValidationError(name,
				fmt.Sprintf("unknown column in table %s", table)))
			continue
		}

		if s.cfg.IsTimeOfDay(table, name) {
			if _, ok := value.(time.Time); !ok {
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticTimestamp), fieldtypes.NameOf(value)))
			}
			continue
		}

		if value == nil {
			continue
		}

		switch col.Semantic {
		case fieldtypes.SemanticInteger:
			switch v := value.(type) {
			case int:
				normalized[name] = int64(v)
			case int64:
				// already native
			case float64:
				normalized[name] = int64(math.Round(v))
			default:
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticInteger), fieldtypes.NameOf(value)))
			}
		case fieldtypes.SemanticDecimal:
			if _, ok := value.(float64); !ok {
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticDecimal), fieldtypes.NameOf(value)))
			}
		case fieldtypes.SemanticBoolean:
			if _, ok := value.(bool); !ok {
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticBoolean), fieldtypes.NameOf(value)))
			}
		case fieldtypes.SemanticTimestamp:
			if _, ok := value.(time.Time); !ok {
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticTimestamp), fieldtypes.NameOf(value)))
			}
		default:
			if _, ok := value.(string); !ok {
				failures = append(failures, apperrors.NewTypeMismatchError(name,
					string(fieldtypes.SemanticText), fieldtypes.NameOf(value)))
			}
		}
	}

	if len(failures) > 0 {
		return nil, failures
	}
	return normalized, nil
}
