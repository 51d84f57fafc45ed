// Package catalog is the read-only collaborator the reservation core
// looks up shows and users in. The core never creates or edits catalog
// entries; seeding and any future CRUD belong to an admin surface.
package catalog

import (
	"sort"
	"sync"

	"cinehall/internal/models"
)

type Catalog struct {
	mu     sync.RWMutex
	movies map[string]*models.Movie
	rooms  map[string]*models.Room
	shows  map[string]*models.Show
	users  map[string]*models.User
}

func New() *Catalog {
	return &Catalog{
		movies: make(map[string]*models.Movie),
		rooms:  make(map[string]*models.Room),
		shows:  make(map[string]*models.Show),
		users:  make(map[string]*models.User),
	}
}

func (c *Catalog) AddMovie(m *models.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies[m.ID] = m
}

func (c *Catalog) AddRoom(r *models.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[r.ID] = r
}

func (c *Catalog) AddShow(s *models.Show) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shows[s.ID] = s
}

func (c *Catalog) AddUser(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[u.ID] = u
}

func (c *Catalog) Movie(id string) (*models.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.movies[id]
	return m, ok
}

func (c *Catalog) Room(id string) (*models.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.rooms[id]
	return r, ok
}

func (c *Catalog) Show(id string) (*models.Show, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.shows[id]
	return s, ok
}

func (c *Catalog) User(id string) (*models.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[id]
	return u, ok
}

// Shows lists all shows ordered by id.
func (c *Catalog) Shows() []*models.Show {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*models.Show, 0, len(c.shows))
	for _, s := range c.shows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
