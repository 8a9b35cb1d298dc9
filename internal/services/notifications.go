package services

import (
	"fmt"
	"sync"
	"time"

	"platemarket/internal/domain"
)

// PreviewLimit is how many notices the bell dropdown shows.
const PreviewLimit = 5

// RecentNotices scans the catalog for listings added within window of now.
// The result replaces any previously derived set.
func RecentNotices(listings []domain.Listing, now time.Time, window time.Duration) []string {
	cutoff := now.Add(-window)
	out := []string{}
	for _, l := range listings {
		if l.DateAdded.After(cutoff) {
			out = append(out, NewListingNotice(l))
		}
	}
	return out
}

func NewListingNotice(l domain.Listing) string {
	return fmt.Sprintf("Новый номер %s %s за %d ₽", l.Number, l.Region, l.Price)
}

func SubmissionNotice(d domain.Draft) string {
	return fmt.Sprintf("Новое объявление %s %s добавлено успешно!", d.Number, d.Region)
}

// NoticeBoard holds a session's notices, most recent first.
type NoticeBoard struct {
	mu    sync.Mutex
	items []string
}

func NewNoticeBoard(initial []string) *NoticeBoard {
	return &NoticeBoard{items: append([]string(nil), initial...)}
}

// Replace swaps in a freshly derived set.
func (b *NoticeBoard) Replace(items []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]string(nil), items...)
}

func (b *NoticeBoard) Prepend(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]string{msg}, b.items...)
}

func (b *NoticeBoard) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
}

func (b *NoticeBoard) Items() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.items...)
}

func (b *NoticeBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Preview returns at most PreviewLimit notices.
func (b *NoticeBoard) Preview() []string {
	items := b.Items()
	if len(items) > PreviewLimit {
		items = items[:PreviewLimit]
	}
	return items
}
