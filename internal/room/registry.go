package room

import (
	"math/rand"
	"regexp"
	"sync"
)

// Member is one occupant of a room, in the shape the front end renders.
type Member struct {
	SteamID string `json:"steam_id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
}

var numberPattern = regexp.MustCompile(`^\d{5}$`)

// ValidNumber reports whether s is a well-formed room number.
func ValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// Registry owns all live rooms. Rooms are ephemeral: created on first join,
// deleted when the last member leaves, never persisted. All state lives
// behind the mutex; callers get snapshots, not shared slices.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string][]Member
	rand  *rand.Rand
}

// NewRegistry returns an empty registry seeded with the given source for
// room number generation.
func NewRegistry(seed int64) *Registry {
	return &Registry{
		rooms: make(map[string][]Member),
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// NewRoomNumber draws a 5-digit number not currently in use. Uniqueness at
// creation is the registry caller's concern, hence this helper; numbers free
// up for reuse only once their room is fully vacant.
func (r *Registry) NewRoomNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		n := make([]byte, 5)
		for i := range n {
			n[i] = byte('0' + r.rand.Intn(10))
		}
		number := string(n)
		if _, taken := r.rooms[number]; !taken {
			return number
		}
	}
}

// Join adds the member to the room, creating the room if it does not exist.
// Joining a room you are already in is a no-op. Returns the member list
// after the join, in join order.
func (r *Registry) Join(number string, m Member) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.rooms[number]
	for _, existing := range members {
		if existing.SteamID == m.SteamID {
			return snapshot(members)
		}
	}
	members = append(members, m)
	r.rooms[number] = members
	return snapshot(members)
}

// Leave removes the member from the room. When the room becomes empty it is
// deleted outright, so a later Join with the same number starts fresh.
// Returns the remaining members and whether the room still exists.
func (r *Registry) Leave(number, steamID string) ([]Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[number]
	if !ok {
		return nil, false
	}
	for i, m := range members {
		if m.SteamID == steamID {
			members = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(members) == 0 {
		delete(r.rooms, number)
		return nil, false
	}
	r.rooms[number] = members
	return snapshot(members), true
}

// Members returns the room's member list in join order, and whether the
// room exists.
func (r *Registry) Members(number string) ([]Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members, ok := r.rooms[number]
	if !ok {
		return nil, false
	}
	return snapshot(members), true
}

// Exists reports whether the room is live.
func (r *Registry) Exists(number string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[number]
	return ok
}

func snapshot(members []Member) []Member {
	out := make([]Member, len(members))
	copy(out, members)
	return out
}
