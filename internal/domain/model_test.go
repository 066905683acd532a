package domain_test

import (
	"testing"

	"github.com/schemaguard/schemaguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidationWindow_Days(t *testing.T) {
	tests := []struct {
		name   string
		window domain.ValidationWindow
		want   int
	}{
		{"exactly one week", domain.ValidationWindow{From: -7 * 86400, To: 0}, 7},
		{"one second rounds up", domain.ValidationWindow{From: -1, To: 0}, 1},
		{"just over a day rounds up", domain.ValidationWindow{From: -90000, To: 0}, 2},
		{"exactly one day", domain.ValidationWindow{From: -86400, To: 0}, 1},
		{"empty window", domain.ValidationWindow{From: 0, To: 0}, 0},
		{"offset window", domain.ValidationWindow{From: -10 * 86400, To: -3 * 86400}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Days())
		})
	}
}

func TestSeverity_Blocking(t *testing.T) {
	assert.True(t, domain.SeverityFailure.Blocking())
	assert.False(t, domain.SeverityWarning.Blocking())
	assert.False(t, domain.SeverityNotice.Blocking())
}

func TestGitContext_Empty(t *testing.T) {
	assert.True(t, domain.GitContext{}.Empty())
	assert.False(t, domain.GitContext{Commit: "abc123"}.Empty())
}
