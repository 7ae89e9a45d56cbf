package utils

import (
	"reflect"
	"testing"
)

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"普通标签", []string{"科技", "文化"}, "科技,文化"},
		{"忽略空白项", []string{"科技", "", "  ", "文化"}, "科技,文化"},
		{"去除首尾空白", []string{" 科技 "}, "科技"},
		{"空列表", []string{}, ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinTags(tt.in); got != tt.want {
				t.Errorf("JoinTags(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"普通字符串", "科技,文化", []string{"科技", "文化"}},
		{"忽略空段", "科技,,文化,", []string{"科技", "文化"}},
		{"空字符串", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTags(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	in := []string{"科技", "文化", "生活"}
	if got := SplitTags(JoinTags(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
