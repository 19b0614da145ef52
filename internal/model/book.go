package model

import "time"

type BookStatus string

const (
	BookStatusWantToRead       BookStatus = "want-to-read"
	BookStatusCurrentlyReading BookStatus = "currently-reading"
	BookStatusCompleted        BookStatus = "completed"
)

var BookStatuses = []BookStatus{BookStatusWantToRead, BookStatusCurrentlyReading, BookStatusCompleted}

// Book in the library. CoverImage is a URL or a data URI.
type Book struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Title       string     `json:"title" yaml:"title" validate:"required"`
	Author      string     `json:"author" yaml:"author" validate:"required"`
	Category    string     `json:"category" yaml:"category" validate:"required"`
	CoverImage  string     `json:"coverImage" yaml:"cover_image" validate:"required"`
	Status      BookStatus `json:"status" yaml:"status" validate:"oneof=want-to-read currently-reading completed"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"created_at"`
	CompletedAt *time.Time `json:"completedAt" yaml:"completed_at"`
}

// Quote belongs to exactly one book.
type Quote struct {
	ID        string    `json:"id" yaml:"id" validate:"required"`
	BookID    string    `json:"bookId" yaml:"book_id" validate:"required"`
	Text      string    `json:"text" yaml:"text" validate:"required"`
	Notes     string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

func (s BookStatus) Valid() bool {
	for _, status := range BookStatuses {
		if s == status {
			return true
		}
	}
	return false
}
