package res

import "testing"

func TestNewPageData(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, pageSize int
		wantTotalPages int
		wantHasMore    bool
	}{
		{"刚好整除", 20, 1, 10, 2, true},
		{"有余数向上取整", 21, 1, 10, 3, true},
		{"最后一页", 21, 3, 10, 3, false},
		{"总数为零", 0, 1, 10, 0, false},
		{"不足一页", 5, 1, 10, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageData([]int{}, tt.total, tt.page, tt.pageSize)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", got.HasMore, tt.wantHasMore)
			}
			if got.Total != tt.total || got.Page != tt.page || got.PageSize != tt.pageSize {
				t.Errorf("回显字段不一致: %+v", got)
			}
		})
	}
}
