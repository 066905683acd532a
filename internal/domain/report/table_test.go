package report_test

import (
	"testing"

	"github.com/schemaguard/schemaguard/internal/domain"
	"github.com/schemaguard/schemaguard/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTable_EmptyChanges(t *testing.T) {
	tbl := report.BuildTable(nil)
	assert.Empty(t, tbl.Rows)
	assert.Equal(t, report.NoChangesMessage, tbl.Message)
}

func TestBuildTable_OneRowPerChange(t *testing.T) {
	changes := []domain.Change{
		{Type: domain.SeverityFailure, Code: "FIELD_REMOVED", Description: "Field `User.email` was removed"},
		{Type: domain.SeverityWarning, Code: "FIELD_DEPRECATED", Description: "Field `User.name` was deprecated"},
		{Type: domain.SeverityNotice, Code: "FIELD_ADDED", Description: "Field `User.handle` was added"},
	}

	tbl := report.BuildTable(changes)
	require.Len(t, tbl.Rows, 3)
	assert.Empty(t, tbl.Message)

	assert.Equal(t, "FAILURE", tbl.Rows[0].Change)
	assert.Equal(t, "FIELD_REMOVED", tbl.Rows[0].Code)
	assert.Equal(t, "Field `User.email` was removed", tbl.Rows[0].Description)
}

func TestBuildTable_EmphasisFollowsSeverity(t *testing.T) {
	tbl := report.BuildTable([]domain.Change{
		{Type: domain.SeverityFailure, Code: "A"},
		{Type: domain.SeverityWarning, Code: "B"},
		{Type: domain.SeverityNotice, Code: "C"},
	})

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, report.EmphasisFail, tbl.Rows[0].Emphasis)
	assert.Equal(t, report.EmphasisWarn, tbl.Rows[1].Emphasis)
	assert.Equal(t, report.EmphasisNone, tbl.Rows[2].Emphasis)
}
