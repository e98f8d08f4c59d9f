package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"balai/infras/otel"
	"balai/infras/postgres"
	"balai/internal/domains/reservation/model"
	stayModel "balai/internal/domains/stay/model"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/logger"
	gRepo "balai/shared/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	InsertWithRooms(ctx context.Context, reservation model.Reservation, rooms []model.ReservationRoom) error
	GetRooms(ctx context.Context, reservationID string) ([]model.ReservationRoom, error)
	CountOverlapping(ctx context.Context, roomIDs []string, checkin, checkout time.Time, excludeReservationID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	roomsRepo gRepo.Repository[model.ReservationRoom]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		roomsRepo:  gRepo.NewRepository[model.ReservationRoom]("reservation_room", model.RoomsTableName, model.FieldReservationID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithRooms writes the reservation and its room assignments in a
// single transaction.
func (repo *repositoryImpl) InsertWithRooms(ctx context.Context, reservation model.Reservation, rooms []model.ReservationRoom) error {
	return repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := repo.InsertTx(ctx, tx, reservation); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		if err := repo.roomsRepo.InsertBulkTx(ctx, tx, rooms); err != nil {
			return fmt.Errorf("failed to insert reservation rooms: %w", err)
		}

		return nil
	})
}

func (repo *repositoryImpl) GetRooms(ctx context.Context, reservationID string) (rooms []model.ReservationRoom, err error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationID,
				Table:    model.RoomsTableName,
			},
		},
	}

	rooms, err = repo.roomsRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomID, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	return rooms, nil
}

// CountOverlapping counts the holds on any of the given rooms within
// the half-open [checkin, checkout) window: live reservations, plus
// open walk-in stays, which have no reservation row. A walk-in with no
// expected checkout blocks the room indefinitely.
func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomIDs []string, checkin, checkout time.Time, excludeReservationID string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			(SELECT COUNT(*)
			 FROM reservations r
			 JOIN reservation_rooms rr ON rr.reservation_id = r.id
			 WHERE rr.room_id IN (?)
			   AND r.status IN (?)
			   AND r.checkin_date < ?
			   AND r.checkout_date > ?
			   AND r.id <> ?)
			+
			(SELECT COUNT(*)
			 FROM stays s
			 WHERE s.room_id IN (?)
			   AND s.status = ?
			   AND s.reservation_id IS NULL
			   AND s.checkin_at < ?
			   AND COALESCE(s.expected_checkout, 'infinity'::timestamptz) > ?)`

	liveStatuses := []string{model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn}

	if excludeReservationID == "" {
		excludeReservationID = uuid.Nil.String()
	}

	query, args, err := sqlx.In(query, roomIDs, liveStatuses, checkout, checkin, excludeReservationID,
		roomIDs, stayModel.StatusOpen, checkout, checkin)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to build overlap query: %w", err)
	}

	query = repo.db.Read.Rebind(query)

	if err = repo.db.Read.GetContext(ctx, &count, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}

	return count, nil
}
