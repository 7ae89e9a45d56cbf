package models

import (
	"errors"
	"strings"
	"testing"
)

func TestCommentValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"正常内容", "写得真好", nil},
		{"空内容", "", ErrEmptyContent},
		{"纯空白", "   ", ErrEmptyContent},
		{"中文400字不超限", strings.Repeat("评", 400), nil},
		{"刚好1000字", strings.Repeat("评", 1000), nil},
		{"1001字超限", strings.Repeat("评", 1001), ErrContentTooLong},
		{"英文1001字符超限", strings.Repeat("a", 1001), ErrContentTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := commentValidate(&CommentModel{Content: tt.content})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("commentValidate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
