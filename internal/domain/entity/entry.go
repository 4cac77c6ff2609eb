package entity

import "time"

// Entry is one diary record owned by exactly one profile.
// Date is the user-supplied calendar date string shown in the diary;
// CreatedAt/UpdatedAt are server timestamps.
type Entry struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"-"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryPatch is a partial update over an entry's content fields.
// Nil fields are left unchanged.
type EntryPatch struct {
	Title *string `json:"title"`
	Date  *string `json:"date"`
	Body  *string `json:"body"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Body == nil
}
