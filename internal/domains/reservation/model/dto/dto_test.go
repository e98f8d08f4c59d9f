package dto_test

import (
	"strings"
	"testing"
	"time"

	"balai/internal/domains/reservation/model"
	"balai/internal/domains/reservation/model/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		GuestID:      "b7f6f3a0-8a6e-4a8d-9a75-0df0b8a36f11",
		RoomIDs:      []string{"3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001"},
		CheckinDate:  "2025-02-10",
		CheckoutDate: "2025-02-12",
		Adults:       2,
		Children:     1,
		Notes:        "late arrival",
	}

	userID := "test-user-id"
	reservation, err := req.ToModel(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.True(t, strings.HasPrefix(reservation.Code, "RSV-"))
	assert.Equal(t, req.GuestID, reservation.GuestID)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), reservation.CheckinDate)
	assert.Equal(t, time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC), reservation.CheckoutDate)
	assert.Equal(t, req.Adults, reservation.Adults)
	assert.Equal(t, req.Children, reservation.Children)
	assert.Equal(t, req.Notes, reservation.Notes)
	assert.Equal(t, userID, reservation.CreatedBy)
	assert.Equal(t, userID, reservation.ModifiedBy)
}

func TestCreateReservationRequest_ToModelInvalidDates(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateReservationRequest
	}{
		{
			name: "bad checkin format",
			req:  dto.CreateReservationRequest{CheckinDate: "10-02-2025", CheckoutDate: "2025-02-12"},
		},
		{
			name: "bad checkout format",
			req:  dto.CreateReservationRequest{CheckinDate: "2025-02-10", CheckoutDate: "tomorrow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToModel("test-user-id")
			assert.Error(t, err)
		})
	}
}

func TestGenerateCode(t *testing.T) {
	code := dto.GenerateCode("3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001")

	assert.Equal(t, "RSV-3F1AA6A8", code)
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	reservation := model.Reservation{
		ID:           "test-id",
		Code:         "RSV-TEST0001",
		GuestID:      "guest-id",
		Status:       model.StatusConfirmed,
		CheckinDate:  time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		CheckoutDate: time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
		Adults:       2,
		Children:     0,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.ReservationResponse
	response.FromModel(reservation)
	response.WithRooms([]model.ReservationRoom{
		{ReservationID: "test-id", RoomID: "room-1"},
		{ReservationID: "test-id", RoomID: "room-2"},
	})

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, reservation.Code, response.Code)
	assert.Equal(t, reservation.Status, response.Status)
	assert.Equal(t, "2025-02-10", response.CheckinDate)
	assert.Equal(t, "2025-02-12", response.CheckoutDate)
	assert.Equal(t, []string{"room-1", "room-2"}, response.RoomIDs)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	models := []model.Reservation{
		{ID: "first", CheckinDate: timezone.Now(), CheckoutDate: timezone.Now()},
		{ID: "second", CheckinDate: timezone.Now(), CheckoutDate: timezone.Now()},
	}

	var response dto.GetReservationsResponse
	response.FromModels(models, 12, 5)

	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "first", response.Reservations[0].ID)
}
