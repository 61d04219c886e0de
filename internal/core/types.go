package core

import "codelistcore/pkg/domain"

type (
	CodeList        = domain.CodeList
	Entry           = domain.Entry
	CodeTermPair    = domain.CodeTermPair
	Metadata        = domain.Metadata
	Options         = domain.Options
	Classification  = domain.Classification
	Source          = domain.Source
	LogEntry        = domain.LogEntry
	LogAction       = domain.LogAction
	Transaction     = domain.Transaction
	TransactionView = domain.TransactionView
	PersistentStore = domain.PersistentStore
)

const (
	ClassificationICD10  = domain.ClassificationICD10
	ClassificationSNOMED = domain.ClassificationSNOMED
	ClassificationOPCS   = domain.ClassificationOPCS
	ClassificationCTV3   = domain.ClassificationCTV3
)

const (
	SourceLoadedFromFile  = domain.SourceLoadedFromFile
	SourceMappedFromList  = domain.SourceMappedFromList
	SourceManuallyCreated = domain.SourceManuallyCreated
)
