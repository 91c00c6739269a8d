package match

import (
	"strings"

	"steamparty/backend/internal/models"
)

// Library is the read side the engine runs against: a user's multiplayer
// games that pass the filter, in library order.
type Library interface {
	ListForUser(userID string, f Filter) ([]models.Game, error)
}

// Engine computes the shared/unshared game view for a room.
type Engine struct {
	lib Library
}

// NewEngine returns an Engine reading from lib.
func NewEngine(lib Library) *Engine {
	return &Engine{lib: lib}
}

// Result is the final list payload: parallel arrays indexed by game, plus
// the deduplicated union of tags seen (for the filter dropdown). Owners
// holds member indices into the room's join-ordered member list; a game is
// fully shared when len(Owners[i]) equals the member count.
type Result struct {
	Names        []string    `json:"games"`
	Owners       [][]int     `json:"owners"`
	Images       []string    `json:"images"`
	Links        []string    `json:"links"`
	Tags         []string    `json:"tags"`
	Prices       [][]float64 `json:"prices"`
	Descriptions []string    `json:"descriptions"`
	Categories   []string    `json:"categories"`
}

// FullyShared reports whether the game at index i is owned by all members.
func (r *Result) FullyShared(i, memberCount int) bool {
	return len(r.Owners[i]) == memberCount
}

// Generate walks each member's filtered library in join order and folds it
// into the result. Games are identified by exact display name; the first
// member to contribute a name also fixes its metadata, later owners only
// append their index. Cost is linear in the total number of games.
func (e *Engine) Generate(memberIDs []string, f Filter) (*Result, error) {
	res := &Result{
		Names:        []string{},
		Owners:       [][]int{},
		Images:       []string{},
		Links:        []string{},
		Tags:         []string{},
		Prices:       [][]float64{},
		Descriptions: []string{},
		Categories:   []string{},
	}

	byName := make(map[string]int)
	seenTags := make(map[string]bool)

	for memberIdx, userID := range memberIDs {
		games, err := e.lib.ListForUser(userID, f)
		if err != nil {
			return nil, err
		}
		for _, g := range games {
			if i, ok := byName[g.Name]; ok {
				if !ownedBy(res.Owners[i], memberIdx) {
					res.Owners[i] = append(res.Owners[i], memberIdx)
				}
				continue
			}

			byName[g.Name] = len(res.Names)
			res.Names = append(res.Names, g.Name)
			res.Owners = append(res.Owners, []int{memberIdx})
			res.Images = append(res.Images, g.HeaderImage)
			res.Links = append(res.Links, g.StoreURL)
			res.Tags = append(res.Tags, g.Tags)
			res.Prices = append(res.Prices, pricePair(g))
			res.Descriptions = append(res.Descriptions, g.Description)

			for _, tag := range strings.Split(g.Tags, ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" && !seenTags[tag] {
					seenTags[tag] = true
					res.Categories = append(res.Categories, tag)
				}
			}
		}
	}

	return res, nil
}

// pricePair is [current] or [current, original] when the game is discounted.
func pricePair(g models.Game) []float64 {
	if g.InitialPrice != 0 && g.InitialPrice != g.Price {
		return []float64{g.Price, g.InitialPrice}
	}
	return []float64{g.Price}
}

func ownedBy(owners []int, idx int) bool {
	for _, o := range owners {
		if o == idx {
			return true
		}
	}
	return false
}
