package domain

import "context"

// TransactionView is a read-only snapshot of the persisted lists. Returned
// lists are deep copies; callers may mutate them freely.
type TransactionView interface {
	FindList(name string) (*CodeList, bool)
	Lists() []*CodeList
	Names() []string
}

// Transaction is a mutable unit of work over the persisted lists. Mutations
// become visible only when the transaction function returns nil.
type Transaction interface {
	TransactionView
	CreateList(list *CodeList) error
	UpdateList(name string, mutator func(*CodeList) error) (*CodeList, error)
	DeleteList(name string) error
}

// PersistentStore persists codelists across process restarts. Implementations
// must roll the state back when the transaction function returns an error.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) error
	View(ctx context.Context, fn func(TransactionView) error) error
}

// Clone returns a deep copy of the list. The copy shares nothing with the
// original.
func (cl *CodeList) Clone() *CodeList {
	if cl == nil {
		return nil
	}
	cp := &CodeList{
		Name:           cl.Name,
		Classification: cl.Classification,
		Metadata:       cl.Metadata.clone(),
		Options:        cl.Options,
		entries:        make(map[entryKey]Entry, len(cl.entries)),
	}
	cp.Log.Entries = append([]LogEntry(nil), cl.Log.Entries...)
	for k, e := range cl.entries {
		cp.entries[k] = e.clone()
	}
	return cp
}

func (m Metadata) clone() Metadata {
	cp := m
	cp.Provenance.Contributors = append([]string(nil), m.Provenance.Contributors...)
	cp.CategorisationAndUsage.Tags = append([]string(nil), m.CategorisationAndUsage.Tags...)
	cp.CategorisationAndUsage.Usage = append([]string(nil), m.CategorisationAndUsage.Usage...)
	cp.CategorisationAndUsage.License = cloneScalar(m.CategorisationAndUsage.License)
	cp.PurposeAndContext.Purpose = cloneScalar(m.PurposeAndContext.Purpose)
	cp.PurposeAndContext.TargetAudience = cloneScalar(m.PurposeAndContext.TargetAudience)
	cp.PurposeAndContext.UseContext = cloneScalar(m.PurposeAndContext.UseContext)
	cp.ValidationAndReview.Reviewer = cloneScalar(m.ValidationAndReview.Reviewer)
	cp.ValidationAndReview.Status = cloneScalar(m.ValidationAndReview.Status)
	cp.ValidationAndReview.ValidationNotes = cloneScalar(m.ValidationAndReview.ValidationNotes)
	if m.ValidationAndReview.ReviewDate != nil {
		d := *m.ValidationAndReview.ReviewDate
		cp.ValidationAndReview.ReviewDate = &d
	}
	return cp
}
