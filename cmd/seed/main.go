package main

import (
	"log"
	"time"

	"balai/config"
	"balai/infras/postgres"
	"balai/shared/password"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	seedUser          = "seed"
	adminEmail        = "admin@balai.local"
	adminPassword     = "admin123"
	defaultRoomFloors = 10
)

type roomTypeSeed struct {
	name     string
	rate     float64
	capacity int
	rooms    []string
}

type serviceSeed struct {
	name     string
	category string
	price    float64
}

func main() {
	cfg := config.Get()
	db := postgres.CreatePostgresWriteConn(*cfg)

	defer func() {
		_ = db.Close()
	}()

	now := time.Now().UTC()

	if err := seedAdmin(db, now); err != nil {
		log.Fatal(err)
	}

	if err := seedRoomTypes(db, now); err != nil {
		log.Fatal(err)
	}

	if err := seedServices(db, now); err != nil {
		log.Fatal(err)
	}

	log.Println("Seeding completed")
}

func seedAdmin(db *sqlx.DB, now time.Time) error {
	hash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO staff (id, first_name, last_name, email, phone, role, status, hire_date, password_hash, created_at, created_by, modified_at, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $8, $10, $8, $10)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "System", "Administrator", adminEmail, "+630000000000", "admin", "active", now, hash, seedUser,
	)

	return err
}

func seedRoomTypes(db *sqlx.DB, now time.Time) error {
	roomTypes := []roomTypeSeed{
		{name: "Standard", rate: 2500, capacity: 2, rooms: []string{"101", "102", "103", "104"}},
		{name: "Deluxe", rate: 4000, capacity: 3, rooms: []string{"201", "202", "203"}},
		{name: "Suite", rate: 7500, capacity: 4, rooms: []string{"301", "302"}},
	}

	for _, rt := range roomTypes {
		roomTypeID := uuid.New().String()

		_, err := db.Exec(`
			INSERT INTO room_types (id, name, description, base_rate, capacity, amenities, created_at, created_by, modified_at, modified_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $7, $8)
			ON CONFLICT (name) DO NOTHING`,
			roomTypeID, rt.name, rt.name+" room", rt.rate, rt.capacity, "WiFi, TV, Air Conditioning", now, seedUser,
		)
		if err != nil {
			return err
		}

		// The ON CONFLICT above may have kept an existing row, so resolve the ID by name.
		if err = db.Get(&roomTypeID, `SELECT id FROM room_types WHERE name = $1`, rt.name); err != nil {
			return err
		}

		for _, number := range rt.rooms {
			floor := int(number[0]-'0') % defaultRoomFloors

			_, err = db.Exec(`
				INSERT INTO rooms (id, number, floor, room_type_id, status, created_at, created_by, modified_at, modified_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $6, $7)
				ON CONFLICT (number) DO NOTHING`,
				uuid.New().String(), number, floor, roomTypeID, "available", now, seedUser,
			)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func seedServices(db *sqlx.DB, now time.Time) error {
	services := []serviceSeed{
		{name: "Breakfast", category: "food", price: 350},
		{name: "Laundry", category: "laundry", price: 200},
		{name: "Airport Transfer", category: "transport", price: 1500},
		{name: "Spa Treatment", category: "wellness", price: 1200},
		{name: "Minibar Restock", category: "food", price: 500},
	}

	for _, svc := range services {
		exists := false
		if err := db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM services WHERE name = $1)`, svc.name); err != nil {
			return err
		}

		if exists {
			continue
		}

		_, err := db.Exec(`
			INSERT INTO services (id, name, category, unit_price, active, created_at, created_by, modified_at, modified_by)
			VALUES ($1, $2, $3, $4, TRUE, $5, $6, $5, $6)`,
			uuid.New().String(), svc.name, svc.category, svc.price, now, seedUser,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
