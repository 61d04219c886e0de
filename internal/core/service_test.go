package core

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"codelistcore/internal/blob"
	"codelistcore/pkg/domain"
	"codelistcore/pkg/validation"
)

func newService(opts ...Option) *Service {
	return NewInMemoryService(opts...)
}

func createSepsisList(t *testing.T, svc *Service) *CodeList {
	t.Helper()
	list := domain.NewCodeList("sepsis", ClassificationICD10, domain.DefaultMetadata(SourceManuallyCreated), nil)
	if err := list.AddEntry("R65.2", "Severe sepsis", nil); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	created, err := svc.CreateList(context.Background(), list)
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return created
}

func TestListLifecycle(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	createSepsisList(t, svc)

	if _, err := svc.CreateList(ctx, domain.NewCodeList("sepsis", ClassificationICD10, domain.DefaultMetadata(SourceManuallyCreated), nil)); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	got, err := svc.GetList(ctx, "sepsis")
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if got.NumEntries() != 1 {
		t.Fatalf("unexpected entry count %d", got.NumEntries())
	}

	names, err := svc.Names(ctx)
	if err != nil || len(names) != 1 || names[0] != "sepsis" {
		t.Fatalf("unexpected names %v (%v)", names, err)
	}

	if err := svc.DeleteList(ctx, "sepsis"); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	var notFound domain.ListNotFoundError
	if _, err := svc.GetList(ctx, "sepsis"); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError, got %v", err)
	}
}

func TestEntryMutationsAreLogged(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	createSepsisList(t, svc)

	updated, err := svc.AddEntry(ctx, "sepsis", "A41.9", "Sepsis, unspecified organism", nil)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if updated.NumEntries() != 2 {
		t.Fatalf("unexpected entry count %d", updated.NumEntries())
	}
	adds := updated.Log.FilterByAction(domain.LogActionAddEntry)
	if len(adds) != 1 || !strings.Contains(adds[0].Message, "A41.9") {
		t.Fatalf("add not logged: %v", updated.Log.Entries)
	}

	if _, err := svc.AddEntryComment(ctx, "sepsis", "A41.9", "Sepsis, unspecified organism", "from HES"); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if _, err := svc.UpdateEntryComment(ctx, "sepsis", "A41.9", "Sepsis, unspecified organism", "revised"); err != nil {
		t.Fatalf("update comment: %v", err)
	}
	if _, err := svc.RemoveEntryComment(ctx, "sepsis", "A41.9", "Sepsis, unspecified organism"); err != nil {
		t.Fatalf("remove comment: %v", err)
	}

	updated, err = svc.RemoveEntry(ctx, "sepsis", "A41.9", "Sepsis, unspecified organism")
	if err != nil {
		t.Fatalf("remove entry: %v", err)
	}
	if updated.NumEntries() != 1 {
		t.Fatalf("unexpected entry count %d", updated.NumEntries())
	}
	if updated.Log.Len() != 5 {
		t.Fatalf("expected 5 log entries, got %d: %v", updated.Log.Len(), updated.Log.Entries)
	}

	// A failed mutation leaves no log entry behind.
	if _, err := svc.RemoveEntry(ctx, "sepsis", "missing", "nope"); err == nil {
		t.Fatalf("expected remove of missing entry to fail")
	}
	got, _ := svc.GetList(ctx, "sepsis")
	if got.Log.Len() != 5 {
		t.Fatalf("failed mutation must not log, got %d entries", got.Log.Len())
	}
}

func TestUpdateMetadataAndReview(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created := createSepsisList(t, svc)
	before := created.Metadata.Provenance.LastModifiedDate

	updated, err := svc.UpdateMetadata(ctx, "sepsis", "set license", func(m *Metadata) error {
		return m.CategorisationAndUsage.AddLicense("OGL-UK-3.0")
	})
	if err != nil {
		t.Fatalf("update metadata: %v", err)
	}
	if updated.Metadata.CategorisationAndUsage.License == nil {
		t.Fatalf("license not set")
	}
	if updated.Metadata.Provenance.LastModifiedDate.Before(before) {
		t.Fatalf("provenance went backwards")
	}
	if len(updated.Log.FilterByAction(domain.LogActionEditMetadata)) != 1 {
		t.Fatalf("metadata edit not logged")
	}

	status := "approved"
	updated, err = svc.RecordReview(ctx, "sepsis", "j.smith", &status, nil)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	vr := updated.Metadata.ValidationAndReview
	if !vr.Reviewed || vr.Reviewer == nil || *vr.Reviewer != "j.smith" || vr.Status == nil || *vr.Status != "approved" {
		t.Fatalf("review not recorded: %+v", vr)
	}

	// Mutator errors roll the whole update back.
	if _, err := svc.UpdateMetadata(ctx, "sepsis", "second license", func(m *Metadata) error {
		return m.CategorisationAndUsage.AddLicense("MIT")
	}); err == nil {
		t.Fatalf("expected second license add to fail")
	}
	got, _ := svc.GetList(ctx, "sepsis")
	if *got.Metadata.CategorisationAndUsage.License != "OGL-UK-3.0" {
		t.Fatalf("failed update leaked: %v", got.Metadata.CategorisationAndUsage.License)
	}
}

func TestValidate(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	createSepsisList(t, svc)

	if err := svc.Validate(ctx, "sepsis"); err != nil {
		t.Fatalf("expected clean list to validate: %v", err)
	}

	if _, err := svc.AddEntry(ctx, "sepsis", "bogus!", "Not a code", nil); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	err := svc.Validate(ctx, "sepsis")
	var listErr validation.ListError
	if !errors.As(err, &listErr) {
		t.Fatalf("expected ListError, got %v", err)
	}
	if len(listErr.Reasons) != 1 || !strings.Contains(listErr.Reasons[0], "bogus!") {
		t.Fatalf("unexpected reasons %v", listErr.Reasons)
	}

	var notFound domain.ListNotFoundError
	if err := svc.Validate(ctx, "missing"); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError, got %v", err)
	}
}

func TestExports(t *testing.T) {
	artifacts := blob.NewMemory()
	svc := newService(WithArtifactStore(artifacts))
	ctx := context.Background()
	createSepsisList(t, svc)

	info, err := svc.ExportCSV(ctx, "sepsis", "exports/sepsis/v1.csv")
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}
	if info.ContentType != "text/csv" || info.Metadata["codelist"] != "sepsis" {
		t.Fatalf("unexpected artifact info %+v", info)
	}
	_, rc, err := artifacts.Get(ctx, "exports/sepsis/v1.csv")
	if err != nil {
		t.Fatalf("get artifact: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if !strings.HasPrefix(string(data), "code,term\n") {
		t.Fatalf("unexpected csv body %q", string(data))
	}

	if _, err := svc.ExportJSON(ctx, "sepsis", "exports/sepsis/v1.json"); err != nil {
		t.Fatalf("export json: %v", err)
	}
	_, rc, err = artifacts.Get(ctx, "exports/sepsis/v1.json")
	if err != nil {
		t.Fatalf("get artifact: %v", err)
	}
	data, _ = io.ReadAll(rc)
	_ = rc.Close()
	var decoded domain.CodeList
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode exported json: %v", err)
	}
	if decoded.Name != "sepsis" || decoded.NumEntries() != 1 {
		t.Fatalf("unexpected decoded list %+v", decoded)
	}

	if _, err := svc.ExportLog(ctx, "sepsis", "logs/sepsis.log"); err != nil {
		t.Fatalf("export log: %v", err)
	}

	got, _ := svc.GetList(ctx, "sepsis")
	saves := got.Log.FilterByAction(domain.LogActionSave)
	if len(saves) != 3 {
		t.Fatalf("expected 3 save log entries, got %d", len(saves))
	}
}

func TestExportWithoutArtifactStore(t *testing.T) {
	svc := newService()
	createSepsisList(t, svc)
	if _, err := svc.ExportCSV(context.Background(), "sepsis", "exports/x.csv"); err == nil {
		t.Fatalf("expected export to fail without an artifact store")
	}
}
