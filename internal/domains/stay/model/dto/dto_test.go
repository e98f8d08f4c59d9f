package dto_test

import (
	"testing"
	"time"

	"balai/internal/domains/stay/model"
	"balai/internal/domains/stay/model/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRequest_ToModel(t *testing.T) {
	req := dto.CheckInRequest{
		RoomID: "3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001",
	}

	reservationID := "b7f6f3a0-8a6e-4a8d-9a75-0df0b8a36f11"
	stay, err := req.ToModel("guest-id", &reservationID, 4000, "test-user-id")

	require.NoError(t, err)
	assert.NotEmpty(t, stay.ID, "expected ID to be generated")
	assert.Equal(t, "guest-id", stay.GuestID)
	assert.Equal(t, req.RoomID, stay.RoomID)
	assert.Equal(t, 4000.0, stay.RoomRate)
	assert.Equal(t, model.StatusOpen, stay.Status)
	assert.False(t, stay.CheckinAt.IsZero(), "expected CheckinAt to default to now")
	assert.Nil(t, stay.ExpectedCheckout)
	assert.Nil(t, stay.CheckoutAt)
	assert.Equal(t, &reservationID, stay.ReservationID)
	assert.Equal(t, "test-user-id", stay.CreatedBy)

	walkIn, err := req.ToModel("guest-id", nil, 2500, "test-user-id")
	require.NoError(t, err)
	assert.Nil(t, walkIn.ReservationID)

	req.CheckinAt = "2025-01-12T14:30:00Z"
	req.ExpectedCheckout = "2025-01-15T12:00:00Z"
	req.Notes = "late arrival"

	stay, err = req.ToModel("guest-id", nil, 4000, "test-user-id")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 12, 14, 30, 0, 0, time.UTC), stay.CheckinAt.UTC())
	require.NotNil(t, stay.ExpectedCheckout)
	assert.Equal(t, time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC), stay.ExpectedCheckout.UTC())
	assert.Equal(t, "late arrival", stay.Notes)

	req.CheckinAt = "not-a-timestamp"
	_, err = req.ToModel("guest-id", nil, 4000, "test-user-id")
	assert.Error(t, err)
}

func TestCheckOutRequest_Defaults(t *testing.T) {
	req := dto.CheckOutRequest{}

	checkoutAt, err := req.ResolveCheckoutAt()
	require.NoError(t, err)
	assert.False(t, checkoutAt.IsZero(), "expected the checkout time to default to now")
	assert.True(t, req.ShouldGenerateInvoice(), "expected the invoice to be generated by default")

	generate := false
	req = dto.CheckOutRequest{CheckoutAt: "2025-01-15T12:00:00Z", GenerateInvoice: &generate}

	checkoutAt, err = req.ResolveCheckoutAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC), checkoutAt.UTC())
	assert.False(t, req.ShouldGenerateInvoice())

	req.CheckoutAt = "15/01/2025"
	_, err = req.ResolveCheckoutAt()
	assert.Error(t, err)
}

func TestAddStayServiceRequest_ToModel(t *testing.T) {
	req := dto.AddStayServiceRequest{
		ServiceID: "3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001",
		Quantity:  2,
	}

	stayService := req.ToModel("stay-id", 350, "test-user-id")

	assert.NotEmpty(t, stayService.ID, "expected ID to be generated")
	assert.Equal(t, "stay-id", stayService.StayID)
	assert.Equal(t, req.ServiceID, stayService.ServiceID)
	assert.Equal(t, 2, stayService.Quantity)
	assert.Equal(t, 350.0, stayService.UnitPrice)
	assert.Equal(t, "test-user-id", stayService.CreatedBy)
}

func TestStayResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	checkout := now.Add(48 * time.Hour)
	reservationID := "reservation-id"

	stay := model.Stay{
		ID:            "test-id",
		ReservationID: &reservationID,
		GuestID:       "guest-id",
		RoomID:        "room-id",
		RoomRate:      4000,
		Status:        model.StatusClosed,
		CheckinAt:     now,
		CheckoutAt:    &checkout,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.StayResponse
	response.FromModel(stay)

	assert.Equal(t, stay.ID, response.ID)
	assert.Equal(t, reservationID, response.ReservationID)
	assert.Equal(t, stay.GuestID, response.GuestID)
	assert.Equal(t, stay.Status, response.Status)
	assert.NotEmpty(t, response.CheckinAt)
	assert.NotEmpty(t, response.CheckoutAt)
}

func TestStayServiceResponse_FromModel(t *testing.T) {
	stayService := model.StayService{
		ID:        "test-id",
		StayID:    "stay-id",
		ServiceID: "service-id",
		Quantity:  3,
		UnitPrice: 200,
	}

	var response dto.StayServiceResponse
	response.FromModel(stayService)

	assert.Equal(t, 3, response.Quantity)
	assert.Equal(t, 200.0, response.UnitPrice)
	assert.Equal(t, 600.0, response.Total)
}

func TestCalculateNights(t *testing.T) {
	base := time.Date(2025, 1, 12, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkout time.Time
		expected int
	}{
		{
			name:     "under a day bills one night",
			checkout: base.Add(5 * time.Hour),
			expected: 1,
		},
		{
			name:     "exactly one day",
			checkout: base.Add(24 * time.Hour),
			expected: 1,
		},
		{
			name:     "a started night rounds up",
			checkout: base.Add(25 * time.Hour),
			expected: 2,
		},
		{
			name:     "two and a half days",
			checkout: base.Add(69*time.Hour + 30*time.Minute),
			expected: 3,
		},
		{
			name:     "same instant still bills one night",
			checkout: base,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.CalculateNights(base, tt.checkout))
		})
	}
}
