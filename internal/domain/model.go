package domain

// Severity is the impact level the registry assigns to a single schema
// change. FAILURE is the only level that blocks a check.
type Severity string

const (
	SeverityNotice  Severity = "NOTICE"
	SeverityWarning Severity = "WARNING"
	SeverityFailure Severity = "FAILURE"
)

// Blocking reports whether a change of this severity fails the check.
func (s Severity) Blocking() bool { return s == SeverityFailure }

// Change is a single difference between the proposed schema and the usage
// recorded against the currently published one. Produced by the registry,
// read-only here.
type Change struct {
	Type        Severity `json:"type"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
}

// ValidationWindow scopes which recorded usage counts as "recent". From and
// To are signed offsets in seconds relative to now, so a well-formed window
// satisfies From <= To <= 0 and lies entirely in the past.
type ValidationWindow struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Days returns the window span rounded up to whole days.
func (w ValidationWindow) Days() int {
	span := w.To - w.From
	if span < 0 {
		span = -span
	}
	return int((span + 86400 - 1) / 86400)
}

// CheckResult is what the registry returns for one check: the full change
// list, how many recorded operations the changes touch, the window the
// registry actually used, and a link to the hosted report.
type CheckResult struct {
	TargetURL          string           `json:"targetUrl"`
	AffectedQueryCount int              `json:"affectedQueryCount"`
	Changes            []Change         `json:"changes"`
	Window             ValidationWindow `json:"window"`
}

// SchemaDocument is the local schema definition as resolved from disk.
type SchemaDocument struct {
	Path string
	Body string
}

// GitContext carries version-control metadata attached to a check so the
// registry can attribute it. All fields are best effort; the zero value
// means "no repository context available".
type GitContext struct {
	Commit    string
	Branch    string
	Committer string
	RemoteURL string
}

// Empty reports whether no version-control metadata could be resolved.
func (g GitContext) Empty() bool { return g == GitContext{} }
