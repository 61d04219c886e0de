package domain

import "time"

// ValidationAndReview captures whether a list has been clinically reviewed
// and by whom. The scalar fields follow the same add/update/remove
// discipline as PurposeAndContext; RecordReview mutates the group
// atomically.
type ValidationAndReview struct {
	Reviewed        bool       `json:"reviewed"`
	Reviewer        *string    `json:"reviewer,omitempty"`
	ReviewDate      *time.Time `json:"review_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	ValidationNotes *string    `json:"validation_notes,omitempty"`
}

// NewValidationAndReview copies the supplied optional values. Reviewed
// defaults to false.
func NewValidationAndReview(reviewed bool, reviewer *string, reviewDate *time.Time, status, notes *string) ValidationAndReview {
	v := ValidationAndReview{
		Reviewed:        reviewed,
		Reviewer:        cloneScalar(reviewer),
		Status:          cloneScalar(status),
		ValidationNotes: cloneScalar(notes),
	}
	if reviewDate != nil {
		d := *reviewDate
		v.ReviewDate = &d
	}
	return v
}

// SetReviewed flips the reviewed flag.
func (v *ValidationAndReview) SetReviewed(reviewed bool) {
	v.Reviewed = reviewed
}

// AddReviewer sets the reviewer when none is set.
func (v *ValidationAndReview) AddReviewer(reviewer string) error {
	return addScalar(&v.Reviewer, reviewer, "reviewer")
}

// UpdateReviewer sets the reviewer regardless of prior state.
func (v *ValidationAndReview) UpdateReviewer(reviewer string) {
	v.Reviewer = &reviewer
}

// RemoveReviewer clears the reviewer; a no-op when absent.
func (v *ValidationAndReview) RemoveReviewer() {
	v.Reviewer = nil
}

// AddStatus sets the status when none is set.
func (v *ValidationAndReview) AddStatus(status string) error {
	return addScalar(&v.Status, status, "status")
}

// UpdateStatus sets the status regardless of prior state.
func (v *ValidationAndReview) UpdateStatus(status string) {
	v.Status = &status
}

// RemoveStatus clears the status; a no-op when absent.
func (v *ValidationAndReview) RemoveStatus() {
	v.Status = nil
}

// AddValidationNotes sets the notes when none are set.
func (v *ValidationAndReview) AddValidationNotes(notes string) error {
	return addScalar(&v.ValidationNotes, notes, "validation notes")
}

// UpdateValidationNotes sets the notes regardless of prior state.
func (v *ValidationAndReview) UpdateValidationNotes(notes string) {
	v.ValidationNotes = &notes
}

// RemoveValidationNotes clears the notes; a no-op when absent.
func (v *ValidationAndReview) RemoveValidationNotes() {
	v.ValidationNotes = nil
}

// RecordReview records a completed review as one operation: it sets the
// reviewer, appends the notes to any existing notes (or sets them), sets the
// status if given, stamps the review date, and marks the list reviewed.
func (v *ValidationAndReview) RecordReview(reviewer string, status, notes *string) {
	v.Reviewer = &reviewer
	if notes != nil {
		if v.ValidationNotes != nil {
			joined := *v.ValidationNotes + "\n" + *notes
			v.ValidationNotes = &joined
		} else {
			v.ValidationNotes = cloneScalar(notes)
		}
	}
	if status != nil {
		v.Status = cloneScalar(status)
	}
	now := time.Now().UTC()
	v.ReviewDate = &now
	v.Reviewed = true
}
