package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Investing", "investing"},
		{"multiple words", "General Discussion", "general-discussion"},
		{"extra whitespace", "  Savings   &  Deposits ", "savings-&-deposits"},
		{"already lowercase", "insurance", "insurance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUser_HasEvidence(t *testing.T) {
	assert.False(t, (&User{}).HasEvidence())
	assert.True(t, (&User{EvidenceKey: "approvals/2026/08/abc"}).HasEvidence())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}
