package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/domain/schema"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	"github.com/shiftdesk/backend/pkg/fieldtypes"
	"github.com/shiftdesk/backend/pkg/timeofday"
)

// Calendar bounds for generic timestamp fields.
var (
	minCalendarDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxCalendarDate = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// decimalScale is the fraction-digit count for generic decimal fields.
const decimalScale = 2

// defaultShiftStartHour pre-fills new time-of-day fields.
const defaultShiftStartHour = 8

// DescriptorService synthesizes the editable representation of a record:
// one FieldShape per column, combining the table's discovered schema with
// the injected per-table overrides. This is the dynamic form core.
type DescriptorService struct {
	cfg      *schema.Config
	schemas  *persistence.SchemaRepository
	records  *persistence.RecordRepository
	identity *IdentityService
}

// NewDescriptorService creates a new DescriptorService
func NewDescriptorService(cfg *schema.Config, schemas *persistence.SchemaRepository, records *persistence.RecordRepository, identity *IdentityService) *DescriptorService {
	return &DescriptorService{cfg: cfg, schemas: schemas, records: records, identity: identity}
}

// BuildShapes returns a shape per column of the table, in schema order.
// current is the row being edited, or nil when adding a new record.
//
// Lookup-population failures degrade to an empty selector and come back as
// warnings: the caller still gets a usable form rather than being blocked.
// Schema and identity failures are hard errors.
func (s *DescriptorService) BuildShapes(ctx context.Context, table string, current models.RecordValues) (shapes []models.FieldShape, warnings []error, err error) {
	columns, err := s.schemas.GetColumns(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	idColumn, err := s.identity.GetIDColumn(ctx, table)
	if err != nil {
		return nil, nil, err
	}

	for _, col := range columns {
		shape := models.FieldShape{
			Column:   col.Name,
			Required: col.Required,
			Selected: -1,
		}
		if current != nil {
			shape.Default = current[col.Name]
		}

		switch {
		case strings.EqualFold(col.Name, idColumn):
			shape.Kind = models.ShapeInteger
			shape.ReadOnly = true
			shape.Min, shape.Max = 0, math.MaxInt64
			if current == nil {
				next, err := s.identity.GetNextID(ctx, table)
				if err != nil {
					return nil, nil, err
				}
				shape.Default = next
			}

		case s.hasLookup(table, col.Name):
			ref, _ := s.cfg.Lookup(table, col.Name)
			shape.Kind = models.ShapeLookup
			entries, lookupErr := s.loadLookup(ctx, ref)
			if lookupErr != nil {
				warnings = append(warnings, fmt.Errorf("loading lookup for column %s: %w", col.Name, lookupErr))
			}
			shape.Entries = entries
			shape.Selected = selectEntry(entries, current, col.Name)

		case s.cfg.IsTimeOfDay(table, col.Name):
			shape.Kind = models.ShapeTimeOfDay
			if current == nil {
				shape.Default = timeofday.Encode(defaultShiftStartHour, 0)
			}

		case s.hasBounds(table, col.Name):
			b, _ := s.cfg.Bounds(table, col.Name)
			shape.Kind = models.ShapeInteger
			shape.Min, shape.Max = b.Min, b.Max

		default:
			s.applyGenericShape(&shape, col, current)
		}

		shapes = append(shapes, shape)
	}

	return shapes, warnings, nil
}

// applyGenericShape derives the shape from the column's semantic type with
// engine-appropriate bounds.
func (s *DescriptorService) applyGenericShape(shape *models.FieldShape, col models.ColumnDescriptor, current models.RecordValues) {
	switch col.Semantic {
	case fieldtypes.SemanticInteger:
		shape.Kind = models.ShapeInteger
		shape.Min, shape.Max = math.MinInt64, math.MaxInt64
	case fieldtypes.SemanticDecimal:
		shape.Kind = models.ShapeDecimal
		shape.Scale = decimalScale
	case fieldtypes.SemanticTimestamp:
		shape.Kind = models.ShapeTimestamp
		shape.MinDate, shape.MaxDate = minCalendarDate, maxCalendarDate
		if current == nil {
			shape.Default = time.Now().Truncate(24 * time.Hour)
		}
	case fieldtypes.SemanticBoolean:
		shape.Kind = models.ShapeBoolean
	default:
		shape.Kind = models.ShapeText
	}
}

func (s *DescriptorService) hasLookup(table, column string) bool {
	_, ok := s.cfg.Lookup(table, column)
	return ok
}

func (s *DescriptorService) hasBounds(table, column string) bool {
	_, ok := s.cfg.Bounds(table, column)
	return ok
}

// loadLookup reads the entire referenced table and projects its key and
// label columns, in natural row order. Duplicate keys are a schema error
// upstream and pass through untouched.
func (s *DescriptorService) loadLookup(ctx context.Context, ref schema.LookupRef) ([]models.LookupEntry, error) {
	rows, err := s.records.ReadAll(ctx, ref.Table)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LookupEntry, 0, len(rows.Records))
	for _, rec := range rows.Records {
		key, ok := asInt64(rec[ref.KeyColumn])
		if !ok {
			return entries, fmt.Errorf("lookup table %s: key column %s holds a non-integer value", ref.Table, ref.KeyColumn)
		}
		entries = append(entries, models.LookupEntry{
			Key:   key,
			Label: asLabel(rec[ref.LabelColumn]),
		})
	}
	return entries, nil
}

// selectEntry pre-selects the entry matching the record's current
// foreign-key value. A missing match is not an error; entry 0 is the
// default for a new record, and -1 means nothing selectable.
func selectEntry(entries []models.LookupEntry, current models.RecordValues, column string) int {
	if len(entries) == 0 {
		return -1
	}
	if current == nil {
		return 0
	}
	key, ok := asInt64(current[column])
	if !ok {
		return 0
	}
	for i, e := range entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func asInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		return int64(val), true
	default:
		return 0, false
	}
}

func asLabel(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
