package statistics

import (
	"strings"

	"github.com/at-ishikawa/lifeos/internal/model"
)

// BookCounts counts books per status; every status is present.
func BookCounts(books []model.Book) map[model.BookStatus]int {
	counts := make(map[model.BookStatus]int, len(model.BookStatuses))
	for _, s := range model.BookStatuses {
		counts[s] = 0
	}
	for _, b := range books {
		counts[b.Status]++
	}
	return counts
}

// SearchBooks filters by status, when set, and by a case-insensitive term in title, author or category.
func SearchBooks(books []model.Book, status model.BookStatus, term string) []model.Book {
	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]model.Book, 0)
	for _, b := range books {
		if status != "" && b.Status != status {
			continue
		}
		if term != "" && !containsFold(term, b.Title, b.Author, b.Category) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// SearchQuotes filters by book, when set, and by a case-insensitive term in text or notes.
func SearchQuotes(quotes []model.Quote, bookID string, term string) []model.Quote {
	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]model.Quote, 0)
	for _, q := range quotes {
		if bookID != "" && q.BookID != bookID {
			continue
		}
		if term != "" && !containsFold(term, q.Text, q.Notes) {
			continue
		}
		result = append(result, q)
	}
	return result
}

func containsFold(lowerTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}
