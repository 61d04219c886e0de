package domain

import (
	"errors"
	"testing"
	"time"
)

func TestProvenanceContributors(t *testing.T) {
	p := NewProvenance(SourceLoadedFromFile, []string{"alice", "bob", "alice"})
	if len(p.Contributors) != 2 {
		t.Fatalf("expected deduplicated contributors, got %v", p.Contributors)
	}
	p.AddContributor("carol")
	p.AddContributor("bob")
	if len(p.Contributors) != 3 {
		t.Fatalf("re-adding a contributor must be a no-op: %v", p.Contributors)
	}
	if err := p.RemoveContributor("bob"); err != nil {
		t.Fatalf("remove contributor: %v", err)
	}
	if len(p.Contributors) != 2 || p.Contributors[0] != "alice" || p.Contributors[1] != "carol" {
		t.Fatalf("removal must preserve order of the rest, got %v", p.Contributors)
	}
	var notFound ContributorNotFoundError
	if err := p.RemoveContributor("bob"); !errors.As(err, &notFound) {
		t.Fatalf("expected ContributorNotFoundError, got %v", err)
	}
	if notFound.Name != "bob" {
		t.Fatalf("unexpected name in error: %s", notFound.Name)
	}
}

func TestProvenanceTouch(t *testing.T) {
	p := NewProvenance(SourceManuallyCreated, nil)
	before := p.LastModifiedDate
	time.Sleep(time.Millisecond)
	p.Touch()
	if !p.LastModifiedDate.After(before) {
		t.Fatalf("touch did not advance last modified date")
	}
	if p.CreatedDate != before {
		t.Fatalf("touch must not change the created date")
	}
}

func TestCategorisationSets(t *testing.T) {
	c := NewCategorisationAndUsage([]string{"zeta", "alpha", "alpha"}, nil, nil)
	if len(c.Tags) != 2 || c.Tags[0] != "alpha" || c.Tags[1] != "zeta" {
		t.Fatalf("tags must be a sorted set, got %v", c.Tags)
	}
	c.AddTag("alpha")
	if len(c.Tags) != 2 {
		t.Fatalf("re-adding a tag must be a no-op: %v", c.Tags)
	}
	c.RemoveTag("missing")
	if len(c.Tags) != 2 {
		t.Fatalf("removing an absent tag must be a no-op: %v", c.Tags)
	}
	c.RemoveTag("alpha")
	if len(c.Tags) != 1 || c.Tags[0] != "zeta" {
		t.Fatalf("unexpected tags after removal: %v", c.Tags)
	}
	c.AddUsage("research")
	c.AddUsage("audit")
	if len(c.Usage) != 2 || c.Usage[0] != "audit" {
		t.Fatalf("usage must be a sorted set, got %v", c.Usage)
	}
}

func TestScalarDiscipline(t *testing.T) {
	c := CategorisationAndUsage{}
	if err := c.AddLicense("CC-BY-4.0"); err != nil {
		t.Fatalf("add license: %v", err)
	}
	var already FieldAlreadySetError
	if err := c.AddLicense("MIT"); !errors.As(err, &already) {
		t.Fatalf("expected FieldAlreadySetError, got %v", err)
	}
	if already.Field != "license" {
		t.Fatalf("unexpected field in error: %s", already.Field)
	}
	c.UpdateLicense("OGL-UK-3.0")
	if c.License == nil || *c.License != "OGL-UK-3.0" {
		t.Fatalf("update must overwrite: %v", c.License)
	}
	c.RemoveLicense()
	if c.License != nil {
		t.Fatalf("license not cleared")
	}
	c.RemoveLicense() // absent: no-op

	pc := PurposeAndContext{}
	if err := pc.AddPurpose("cohort definition"); err != nil {
		t.Fatalf("add purpose: %v", err)
	}
	if err := pc.AddPurpose("again"); err == nil {
		t.Fatalf("expected second add to fail")
	}
	pc.UpdateTargetAudience("epidemiologists")
	if pc.TargetAudience == nil || *pc.TargetAudience != "epidemiologists" {
		t.Fatalf("update target audience failed: %v", pc.TargetAudience)
	}
	pc.RemoveUseContext() // absent: no-op
	if err := pc.AddUseContext("primary care"); err != nil {
		t.Fatalf("add use context: %v", err)
	}
	pc.RemoveUseContext()
	if pc.UseContext != nil {
		t.Fatalf("use context not cleared")
	}
}

func TestRecordReview(t *testing.T) {
	v := ValidationAndReview{}
	if v.Reviewed {
		t.Fatalf("reviewed must default to false")
	}
	status := "approved"
	notes := "checked against HES"
	v.RecordReview("j.smith", &status, &notes)
	if !v.Reviewed {
		t.Fatalf("record review must mark the list reviewed")
	}
	if v.Reviewer == nil || *v.Reviewer != "j.smith" {
		t.Fatalf("reviewer not set: %v", v.Reviewer)
	}
	if v.Status == nil || *v.Status != "approved" {
		t.Fatalf("status not set: %v", v.Status)
	}
	if v.ValidationNotes == nil || *v.ValidationNotes != "checked against HES" {
		t.Fatalf("notes not set: %v", v.ValidationNotes)
	}
	if v.ReviewDate == nil {
		t.Fatalf("review date not stamped")
	}

	more := "re-reviewed after update"
	v.RecordReview("k.jones", nil, &more)
	if *v.Reviewer != "k.jones" {
		t.Fatalf("reviewer not replaced: %v", v.Reviewer)
	}
	if *v.Status != "approved" {
		t.Fatalf("nil status must leave prior status, got %v", v.Status)
	}
	if *v.ValidationNotes != "checked against HES\nre-reviewed after update" {
		t.Fatalf("notes must append, got %q", *v.ValidationNotes)
	}
}

func TestReviewScalarDiscipline(t *testing.T) {
	v := ValidationAndReview{}
	if err := v.AddReviewer("a"); err != nil {
		t.Fatalf("add reviewer: %v", err)
	}
	if err := v.AddReviewer("b"); err == nil {
		t.Fatalf("expected second add to fail")
	}
	v.UpdateReviewer("b")
	if *v.Reviewer != "b" {
		t.Fatalf("update reviewer failed")
	}
	v.RemoveReviewer()
	if v.Reviewer != nil {
		t.Fatalf("reviewer not cleared")
	}
	if err := v.AddStatus("draft"); err != nil {
		t.Fatalf("add status: %v", err)
	}
	v.RemoveValidationNotes() // absent: no-op
	if err := v.AddValidationNotes("initial pass"); err != nil {
		t.Fatalf("add notes: %v", err)
	}
	v.UpdateValidationNotes("revised")
	if *v.ValidationNotes != "revised" {
		t.Fatalf("update notes failed")
	}
}

func TestDefaultMetadata(t *testing.T) {
	m := DefaultMetadata(SourceMappedFromList)
	if m.Provenance.Source != SourceMappedFromList {
		t.Fatalf("unexpected source %s", m.Provenance.Source)
	}
	if m.CategorisationAndUsage.License != nil || m.PurposeAndContext.Purpose != nil {
		t.Fatalf("optional fields must start unset")
	}
	if m.ValidationAndReview.Reviewed {
		t.Fatalf("reviewed must start false")
	}
}
