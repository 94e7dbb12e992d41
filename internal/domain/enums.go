package domain

// SMKVersion identifies which generation of the external SMK schema a
// specialization was registered under. The two generations are incompatible
// and are never unified.
type SMKVersion string

const (
	SMKOld SMKVersion = "old"
	SMKNew SMKVersion = "new"
)

// SyncStatus reflects whether a realization has been transmitted to SMK.
type SyncStatus string

const (
	SyncNotSynced SyncStatus = "not_synced"
	SyncSynced    SyncStatus = "synced"
	SyncModified  SyncStatus = "modified"
	SyncFailed    SyncStatus = "sync_failed"
)

type ModuleType string

const (
	ModuleBasic        ModuleType = "basic"
	ModuleSpecialistic ModuleType = "specialistic"
)

// ProcedureRole is the old-generation single-letter role code.
type ProcedureRole string

const (
	RoleOperator  ProcedureRole = "A"
	RoleAssistant ProcedureRole = "B"
)

// ActivityKind classifies the "other" activity categories that appear in the
// statistics snapshot but carry no completion weight of their own.
type ActivityKind string

const (
	ActivitySelfEducation ActivityKind = "self_education"
	ActivityEducational   ActivityKind = "educational_activity"
	ActivityPublication   ActivityKind = "publication"
	ActivityAbsence       ActivityKind = "absence"
)

// ValidActivityKinds is the canonical set of accepted activity kind strings.
var ValidActivityKinds = map[string]bool{
	"self_education": true, "educational_activity": true,
	"publication": true, "absence": true,
}

// ValidSMKVersions is the canonical set of accepted version tags.
var ValidSMKVersions = map[string]bool{
	"old": true, "new": true,
}

// UnnamedPlaceholder is the literal an old-generation client stores when the
// trainee left an internship name blank.
const UnnamedPlaceholder = "(unnamed)"
