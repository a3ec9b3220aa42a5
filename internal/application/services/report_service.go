package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	"github.com/shiftdesk/backend/pkg/constants"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
	"github.com/shiftdesk/backend/pkg/query"
)

// ReportService builds the shift report queries and runs them through the
// record store's read capability. It never touches the write path. Each
// report is one left join of the Shifts table against its five lookup
// tables; criteria values are bound as parameters.
type ReportService struct {
	records *persistence.RecordRepository
}

// NewReportService creates a new ReportService
func NewReportService(records *persistence.RecordRepository) *ReportService {
	return &ReportService{records: records}
}

// shiftJoin is the shared FROM/LEFT JOIN clause resolving every foreign
// key of the Shifts table to its display column.
var shiftJoin = fmt.Sprintf(`FROM %[1]s s
LEFT JOIN %[2]s p ON s.%[7]s = p.%[7]s
LEFT JOIN %[3]s m ON s.%[8]s = m.%[8]s
LEFT JOIN %[4]s v ON s.%[9]s = v.%[9]s
LEFT JOIN %[5]s w ON s.%[10]s = w.%[10]s
LEFT JOIN %[6]s d ON s.%[11]s = d.%[11]s`,
	query.Quote(constants.TableShifts),
	query.Quote(constants.TableDepartments),
	query.Quote(constants.TableManagers),
	query.Quote(constants.TableShiftSupervisors),
	query.Quote(constants.TableWorkerCounts),
	query.Quote(constants.TableShiftDurations),
	query.Quote(constants.FieldDepartmentID),
	query.Quote(constants.FieldManagerID),
	query.Quote(constants.FieldSupervisorID),
	query.Quote(constants.FieldWorkerCountID),
	query.Quote(constants.FieldShiftDurationID),
)

// shiftColumns is the detail-report projection.
var shiftColumns = fmt.Sprintf(`SELECT s.%s, s.%s, p.%s, m.%s, v.%s, w.%s, d.%s`,
	query.Quote(constants.FieldShiftID),
	query.Quote(constants.FieldShiftDate),
	query.Quote(constants.FieldDepartment),
	query.Quote(constants.FieldManagerName),
	query.Quote(constants.FieldSupervisorName),
	query.Quote(constants.FieldWorkerCount),
	query.Quote(constants.FieldShiftHours),
)

// ShiftsByDateRange reports every shift whose date falls inside the
// inclusive range, ordered by date.
func (s *ReportService) ShiftsByDateRange(ctx context.Context, from, to time.Time) (*models.Rows, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError(constants.FieldShiftDate,
			"start of range is after its end")
	}

	sqlText := fmt.Sprintf("%s\n%s\nWHERE date(s.%[3]s) BETWEEN date(?) AND date(?)\nORDER BY s.%[3]s",
		shiftColumns, shiftJoin, query.Quote(constants.FieldShiftDate))

	return s.records.Query(ctx, sqlText,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// ShiftsByDepartment reports every shift of one department, by its
// display name.
func (s *ReportService) ShiftsByDepartment(ctx context.Context, department string) (*models.Rows, error) {
	sqlText := fmt.Sprintf("%s\n%s\nWHERE p.%s = ?\nORDER BY s.%s",
		shiftColumns, shiftJoin,
		query.Quote(constants.FieldDepartment),
		query.Quote(constants.FieldShiftDate))

	return s.records.Query(ctx, sqlText, department)
}

// ShiftsBySupervisor reports every shift run by one shift supervisor.
func (s *ReportService) ShiftsBySupervisor(ctx context.Context, supervisor string) (*models.Rows, error) {
	sqlText := fmt.Sprintf("%s\n%s\nWHERE v.%s = ?\nORDER BY s.%s",
		shiftColumns, shiftJoin,
		query.Quote(constants.FieldSupervisorName),
		query.Quote(constants.FieldShiftDate))

	return s.records.Query(ctx, sqlText, supervisor)
}

// MonthlySummary aggregates one calendar month per department: shift
// count, total workers, total hours.
func (s *ReportService) MonthlySummary(ctx context.Context, month, year int) (*models.Rows, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError(constants.FieldShiftDate,
			fmt.Sprintf("month %d is out of range", month))
	}

	sqlText := fmt.Sprintf(`SELECT p.%[1]s,
COUNT(s.%[2]s) AS [Shift Count],
SUM(w.%[3]s) AS [Total Workers],
SUM(d.%[4]s) AS [Total Hours]
%[5]s
WHERE strftime('%%m', s.%[6]s) = ? AND strftime('%%Y', s.%[6]s) = ?
GROUP BY p.%[1]s`,
		query.Quote(constants.FieldDepartment),
		query.Quote(constants.FieldShiftID),
		query.Quote(constants.FieldWorkerCount),
		query.Quote(constants.FieldShiftHours),
		shiftJoin,
		query.Quote(constants.FieldShiftDate))

	return s.records.Query(ctx, sqlText,
		fmt.Sprintf("%02d", month), strconv.Itoa(year))
}
