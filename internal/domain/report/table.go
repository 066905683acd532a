package report

import "github.com/schemaguard/schemaguard/internal/domain"

// Emphasis is the visual intent attached to a table row. The renderer
// decides what it looks like; this package only decides which rows get it.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisWarn
	EmphasisFail
)

// Row is one change rendered for the tabular view.
type Row struct {
	Change      string
	Code        string
	Description string
	Emphasis    Emphasis
}

// Table is the tabular rendering of a change list. When the list is empty,
// Rows is empty and Message carries the single line to print instead.
type Table struct {
	Rows    []Row
	Message string
}

// NoChangesMessage is emitted in place of rows when the registry reported
// no differences at all.
const NoChangesMessage = "No changes present between schemas."

// BuildTable maps each change to a row tagged with its emphasis intent.
// FAILURE and WARNING rows are emphasized, NOTICE rows are not.
func BuildTable(changes []domain.Change) Table {
	if len(changes) == 0 {
		return Table{Message: NoChangesMessage}
	}

	rows := make([]Row, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, Row{
			Change:      string(ch.Type),
			Code:        ch.Code,
			Description: ch.Description,
			Emphasis:    emphasisFor(ch.Type),
		})
	}
	return Table{Rows: rows}
}

func emphasisFor(s domain.Severity) Emphasis {
	switch s {
	case domain.SeverityFailure:
		return EmphasisFail
	case domain.SeverityWarning:
		return EmphasisWarn
	default:
		return EmphasisNone
	}
}
