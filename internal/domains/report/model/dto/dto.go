package dto

import (
	"balai/internal/domains/report/model"
)

type DashboardResponse struct {
	TotalRooms         int     `json:"total_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	AvailableRooms     int     `json:"available_rooms"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	TodaysCheckins     int     `json:"todays_checkins"`
	TodaysCheckouts    int     `json:"todays_checkouts"`
	OpenStays          int     `json:"open_stays"`
	RevenueToday       float64 `json:"revenue_today"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

func (r *DashboardResponse) FromModel(stats model.DashboardStats) {
	r.TotalRooms = stats.TotalRooms
	r.OccupiedRooms = stats.OccupiedRooms
	r.AvailableRooms = stats.AvailableRooms
	r.TodaysCheckins = stats.TodaysCheckins
	r.TodaysCheckouts = stats.TodaysCheckouts
	r.OpenStays = stats.OpenStays
	r.RevenueToday = stats.RevenueToday
	r.OutstandingBalance = stats.OutstandingBalance

	if stats.TotalRooms > 0 {
		r.OccupancyRate = float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100
	}
}

type OccupancyReportResponse struct {
	From                string  `json:"from"`
	To                  string  `json:"to"`
	TotalRooms          int     `json:"total_rooms"`
	AvailableRoomNights float64 `json:"available_room_nights"`
	OccupiedRoomNights  float64 `json:"occupied_room_nights"`
	OccupancyRate       float64 `json:"occupancy_rate"`
	RoomRevenue         float64 `json:"room_revenue"`
	ADR                 float64 `json:"adr"`
	RevPAR              float64 `json:"revpar"`
}

type PaymentMethodTotalResponse struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

type RevenueReportResponse struct {
	From           string                       `json:"from"`
	To             string                       `json:"to"`
	RoomCharges    float64                      `json:"room_charges"`
	ServiceCharges float64                      `json:"service_charges"`
	TotalInvoiced  float64                      `json:"total_invoiced"`
	TotalCollected float64                      `json:"total_collected"`
	ByMethod       []PaymentMethodTotalResponse `json:"by_method"`
}
