package model

// DashboardStats are the front-desk KPIs for a single day.
type DashboardStats struct {
	TotalRooms         int     `db:"total_rooms"`
	OccupiedRooms      int     `db:"occupied_rooms"`
	AvailableRooms     int     `db:"available_rooms"`
	TodaysCheckins     int     `db:"todays_checkins"`
	TodaysCheckouts    int     `db:"todays_checkouts"`
	OpenStays          int     `db:"open_stays"`
	RevenueToday       float64 `db:"revenue_today"`
	OutstandingBalance float64 `db:"outstanding_balance"`
}

// OccupancyStats aggregates the closed stays of a date range.
type OccupancyStats struct {
	TotalRooms         int     `db:"total_rooms"`
	OccupiedRoomNights float64 `db:"occupied_room_nights"`
	RoomRevenue        float64 `db:"room_revenue"`
}

// RevenueStats aggregates the invoices and payments of a date range.
type RevenueStats struct {
	RoomCharges    float64 `db:"room_charges"`
	ServiceCharges float64 `db:"service_charges"`
	TotalInvoiced  float64 `db:"total_invoiced"`
	TotalCollected float64 `db:"total_collected"`
}

// PaymentMethodTotal is the collected amount per payment method.
type PaymentMethodTotal struct {
	Method string  `db:"method"`
	Total  float64 `db:"total"`
}
