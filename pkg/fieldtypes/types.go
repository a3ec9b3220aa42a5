package fieldtypes

import (
	"strings"
	"time"
)

// StorageType is the storage engine's view of a column, parsed from the
// declared column type. The enumeration is closed: anything unrecognized
// collapses to StorageText.
type StorageType string

const (
	StorageInteger  StorageType = "INTEGER"
	StorageDecimal  StorageType = "DECIMAL"
	StorageCurrency StorageType = "CURRENCY"
	StorageDate     StorageType = "DATE"
	StorageBoolean  StorageType = "BOOLEAN"
	StorageText     StorageType = "TEXT"
)

// SemanticType is the application's view of a value.
type SemanticType string

const (
	SemanticInteger   SemanticType = "Integer"
	SemanticDecimal   SemanticType = "Decimal"
	SemanticBoolean   SemanticType = "Boolean"
	SemanticTimestamp SemanticType = "Timestamp"
	SemanticText      SemanticType = "Text"
)

// ParseDeclaredType maps a declared column type (as reported by the
// engine's column metadata, e.g. "INTEGER", "NVARCHAR(50)", "DATETIME")
// onto the storage type enumeration. Total: unknown declarations are text.
func ParseDeclaredType(declared string) StorageType {
	d := strings.ToUpper(strings.TrimSpace(declared))
	switch {
	case strings.Contains(d, "BOOL"):
		return StorageBoolean
	case strings.Contains(d, "CURRENCY"), strings.Contains(d, "MONEY"):
		return StorageCurrency
	case strings.Contains(d, "INT"):
		return StorageInteger
	case strings.Contains(d, "DEC"), strings.Contains(d, "NUMERIC"),
		strings.Contains(d, "REAL"), strings.Contains(d, "FLOA"),
		strings.Contains(d, "DOUB"):
		return StorageDecimal
	case strings.Contains(d, "DATE"), strings.Contains(d, "TIME"):
		return StorageDate
	default:
		return StorageText
	}
}

// SemanticOf maps a storage type onto its semantic type. Total function
// over the storage type enumeration; no failure mode.
func SemanticOf(st StorageType) SemanticType {
	switch st {
	case StorageInteger:
		return SemanticInteger
	case StorageDecimal, StorageCurrency:
		return SemanticDecimal
	case StorageDate:
		return SemanticTimestamp
	case StorageBoolean:
		return SemanticBoolean
	default:
		return SemanticText
	}
}

// NameOf reports the semantic name of a runtime value, for error messages.
func NameOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case int, int64:
		return string(SemanticInteger)
	case float64:
		return string(SemanticDecimal)
	case bool:
		return string(SemanticBoolean)
	case time.Time:
		return string(SemanticTimestamp)
	case string:
		return string(SemanticText)
	default:
		return "unsupported"
	}
}
