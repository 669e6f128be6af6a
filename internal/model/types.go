package model

import "time"

// FoundItem is an object handed in at the festival lost-and-found desk.
//
// PossibleMatches is derived state, never authored directly: the match engine
// rewrites it wholesale after every mutation to either record set.
type FoundItem struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	FoundDate       string    `json:"found_date"`
	FoundTime       string    `json:"found_time"`
	Location        string    `json:"location"`
	ContentInfo     *string   `json:"content_info,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	ImageFilename   *string   `json:"image_filename,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PossibleMatches []string  `json:"possible_matches"`
}

// LostItem is an object a visitor reported missing. Symmetric to FoundItem
// except it carries no photo; PossibleMatches holds found-item ids.
type LostItem struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	LostDate        string    `json:"lost_date"`
	LostTime        string    `json:"lost_time"`
	Location        string    `json:"location"`
	ContentInfo     *string   `json:"content_info,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PossibleMatches []string  `json:"possible_matches"`
}

// User is an account; IsAdmin gates item updates and deletions.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// MatchPair is one edge of the candidate-match relation.
type MatchPair struct {
	FoundID string
	LostID  string
}

// FoundItemUpdate carries a partial update; nil fields are left unchanged.
// ID and CreatedAt are not representable here on purpose.
type FoundItemUpdate struct {
	Description *string
	FoundDate   *string
	FoundTime   *string
	Location    *string
	ContentInfo *string
}

// LostItemUpdate carries a partial update; nil fields are left unchanged.
type LostItemUpdate struct {
	Description *string
	LostDate    *string
	LostTime    *string
	Location    *string
	ContentInfo *string
}
