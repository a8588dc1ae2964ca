package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				Publication: "P1",
				User:        "U1",
				Content:     "Great pictures!",
			},
			wantErr: false,
		},
		{
			name: "publication reference is not enforced",
			comment: &Comment{
				User:    "U1",
				Content: "Orphan comment",
			},
			wantErr: false,
		},
		{
			name: "empty content",
			comment: &Comment{
				Publication: "P1",
				User:        "U1",
				Content:     "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{
		Publication: "P1",
		Content:     "Test Comment",
	}

	assert.True(t, comment.CreatedAt.IsZero())
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
	assert.False(t, comment.UpdatedAt.IsZero())
}
