package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		status IssueStatus
		want   StyleVariant
	}{
		{StatusResolved, StyleResolved},
		{StatusInProgress, StyleInProgress},
		{StatusPending, StylePending},
		{"Closed", StyleOther},
		{"", StyleOther},
		{"resolved", StyleOther}, // comparison is exact
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StyleFor(tt.status))
		})
	}
}

func TestStyleVariant_String(t *testing.T) {
	assert.Equal(t, "resolved", StyleResolved.String())
	assert.Equal(t, "in-progress", StyleInProgress.String())
	assert.Equal(t, "pending", StylePending.String())
	assert.Equal(t, "other", StyleOther.String())
	assert.Equal(t, "other", StyleVariant(42).String())
}

func TestIssue_Style(t *testing.T) {
	i := Issue{Title: "Streetlight not working", Status: StatusResolved}
	assert.Equal(t, StyleResolved, i.Style())
}
