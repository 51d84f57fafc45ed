package catalog

import (
	"time"

	"cinehall/internal/models"
)

// Seeded builds a catalog with the default rooms, movies, shows and users
// so the server is usable out of the box.
func Seeded() *Catalog {
	c := New()

	room1 := models.NewRoom("ROOM-001", "Screen 1", 8, 12)
	room2 := models.NewRoom("ROOM-002", "VIP Lounge", 6, 10)
	room3 := models.NewRoom("ROOM-003", "Grand Hall", 10, 15)
	room3.DiscountRows = 2
	c.AddRoom(room1)
	c.AddRoom(room2)
	c.AddRoom(room3)

	movie1 := &models.Movie{
		ID:          "MOV-001",
		Title:       "The Wandering Signal",
		Genre:       "Sci-Fi",
		Director:    "R. Calder",
		DurationMin: 173,
		Rating:      8.3,
		ReleaseDate: time.Date(2023, 1, 22, 0, 0, 0, 0, time.UTC),
	}
	movie2 := &models.Movie{
		ID:          "MOV-002",
		Title:       "Crimson River",
		Genre:       "Drama",
		Director:    "A. Moreau",
		DurationMin: 159,
		Rating:      7.9,
		ReleaseDate: time.Date(2023, 1, 22, 0, 0, 0, 0, time.UTC),
	}
	movie3 := &models.Movie{
		ID:          "MOV-003",
		Title:       "Deep Below",
		Genre:       "Animation",
		Director:    "T. Okada",
		DurationMin: 112,
		Rating:      7.3,
		ReleaseDate: time.Date(2023, 1, 22, 0, 0, 0, 0, time.UTC),
	}
	c.AddMovie(movie1)
	c.AddMovie(movie2)
	c.AddMovie(movie3)

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	dayAfter := now.AddDate(0, 0, 2)

	c.AddShow(models.NewShow("SHOW-001", movie1.ID, room1, at(tomorrow, 14, 30), 45.0))
	c.AddShow(models.NewShow("SHOW-002", movie1.ID, room1, at(tomorrow, 19, 0), 55.0))
	c.AddShow(models.NewShow("SHOW-003", movie2.ID, room2, at(tomorrow, 15, 0), 60.0))
	c.AddShow(models.NewShow("SHOW-004", movie3.ID, room3, at(dayAfter, 13, 30), 50.0))

	c.AddUser(&models.User{
		ID:    "ADMIN-001",
		Name:  "Administrator",
		Email: "admin@cinehall.local",
		Phone: "13800138000",
		Role:  models.RoleAdmin,
	})
	c.AddUser(&models.User{
		ID:    "USER-001",
		Name:  "Test Customer",
		Email: "customer@cinehall.local",
		Phone: "18800000000",
		Role:  models.RoleCustomer,
	})

	return c
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}
