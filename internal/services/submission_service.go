package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"platemarket/internal/domain"
	"platemarket/internal/repos"
)

var ErrDraftIncomplete = errors.New("draft is missing required fields")

// FieldError names a draft field that failed the required/format check.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return "invalid field: " + e.Field }
func (e *FieldError) Unwrap() error { return ErrDraftIncomplete }

// SubmissionService accepts drafts. Accepted drafts go to the moderation
// queue and produce a notice; the listing store is not touched.
type SubmissionService struct {
	Queue *repos.SubmissionRepo
}

func NewSubmissionService(queue *repos.SubmissionRepo) *SubmissionService {
	return &SubmissionService{Queue: queue}
}

// Submit records the draft, prepends the success notice to board and returns it.
func (s *SubmissionService) Submit(sessionID string, d domain.Draft, board *NoticeBoard) (string, error) {
	d = TrimDraft(d)
	price, err := CheckDraft(d)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if s.Queue != nil {
		if err := s.Queue.Create(repos.SubmissionRow{
			ID:          id,
			SessionID:   sessionID,
			Number:      d.Number,
			Region:      d.Region,
			Price:       price,
			Seller:      d.Seller,
			Phone:       d.Phone,
			Description: d.Description,
		}); err != nil {
			return "", fmt.Errorf("queue submission: %w", err)
		}
	}
	msg := SubmissionNotice(d)
	board.Prepend(msg)
	return id, nil
}

func TrimDraft(d domain.Draft) domain.Draft {
	return domain.Draft{
		Number:      strings.TrimSpace(d.Number),
		Region:      strings.TrimSpace(d.Region),
		Price:       strings.TrimSpace(d.Price),
		Seller:      strings.TrimSpace(d.Seller),
		Phone:       strings.TrimSpace(d.Phone),
		Description: strings.TrimSpace(d.Description),
	}
}

// CheckDraft enforces required presence and a non-negative integer price.
func CheckDraft(d domain.Draft) (int64, error) {
	required := []struct{ name, v string }{
		{"number", d.Number},
		{"region", d.Region},
		{"price", d.Price},
		{"seller", d.Seller},
		{"phone", d.Phone},
	}
	for _, f := range required {
		if f.v == "" {
			return 0, &FieldError{Field: f.name}
		}
	}
	price, err := strconv.ParseInt(d.Price, 10, 64)
	if err != nil || price < 0 {
		return 0, &FieldError{Field: "price"}
	}
	return price, nil
}
