package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceForDay атомарно заменяет все слоты площадки на указанную дату.
// Replace, а не merge: прежний набор за день удаляется целиком.
// Обязан вызываться внутри транзакции (контекст от txmanager),
// чтобы частичная замена не была наблюдаема
func (r *Repository) ReplaceForDay(ctx context.Context, courtID int64, day time.Time, slots []*domain.Availability) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availabilities").
		Where(squirrel.Eq{"court_id": courtID, "day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForDay - execute delete: %v", ErrExecQuery, err)
	}

	created := make([]*domain.Availability, 0, len(slots))
	for _, slot := range slots {
		insertQuery, insertArgs, err := psqlbuilder.Insert("availabilities").
			Columns("court_id", "day", "start_at", "end_at", "period", "active", "created_by").
			Values(slot.CourtID, slot.Day, slot.StartAt, slot.EndAt, slot.Period, slot.Active, slot.CreatedBy).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForDay - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		err = executor.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(
			&slot.ID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceForDay - execute insert: %v", ErrExecQuery, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		created = append(created, slot)
	}

	return created, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется через FOR UPDATE - это точка
// сериализации конкурирующих бронирований одного слота
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "court_id", "day", "start_at", "end_at", "period", "active", "created_by", "created_at", "updated_at",
	).
		From("availabilities").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan availability: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListActive возвращает активные слоты площадки, отсортированные по времени начала
// Опционально фильтрует по конкретной дате
func (r *Repository) ListActive(ctx context.Context, courtID int64, day *time.Time) ([]*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "court_id", "day", "start_at", "end_at", "period", "active", "created_by", "created_at", "updated_at",
	).
		From("availabilities").
		Where(squirrel.Eq{"court_id": courtID, "active": true}).
		OrderBy("start_at ASC")

	if day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day": *day})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Availability, 0)
	for rows.Next() {
		slot, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// SetActive выставляет флаг active у слота
// active=false при бронировании, active=true при возврате слота после отмены
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availabilities").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.Availability, error) {
	var slot domain.Availability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.CourtID,
		&slot.Day,
		&slot.StartAt,
		&slot.EndAt,
		&slot.Period,
		&slot.Active,
		&slot.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
