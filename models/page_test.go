package models

import "testing"

func TestPageInfoNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           PageInfo
		wantPage     int
		wantPageSize int
	}{
		{"零值取默认", PageInfo{}, 1, 10},
		{"负数取默认", PageInfo{Page: -1, PageSize: -5}, 1, 10},
		{"合法值保留", PageInfo{Page: 3, PageSize: 20}, 3, 20},
		{"只传页码", PageInfo{Page: 2}, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			if tt.in.Page != tt.wantPage || tt.in.PageSize != tt.wantPageSize {
				t.Errorf("Normalize() = (%d, %d), want (%d, %d)",
					tt.in.Page, tt.in.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestPageInfoOffset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}
	for _, tt := range tests {
		p := PageInfo{Page: tt.page, PageSize: tt.pageSize}
		if got := p.Offset(); got != tt.want {
			t.Errorf("PageInfo{%d, %d}.Offset() = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}
