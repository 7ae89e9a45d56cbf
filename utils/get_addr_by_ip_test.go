package utils

import (
	"net"
	"testing"
)

func TestIsIntranetIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.1", true},
		{"192.168.1.1", true},
		{"169.254.0.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		// RFC1918 的 172 段到 172.31 为止
		{"172.32.0.1", false},
		{"172.15.255.255", false},
		{"8.8.8.8", false},
		{"114.114.114.114", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := IsIntranetIP(net.ParseIP(tt.ip)); got != tt.want {
				t.Errorf("IsIntranetIP(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}

func TestGetAddrByIpWithoutAddrDB(t *testing.T) {
	if got := GetAddrByIp("10.1.2.3"); got != "内网地址-10.1.2.3" {
		t.Errorf("GetAddrByIp(内网) = %q", got)
	}
	// 地址库未加载时降级为未知地区
	if got := GetAddrByIp("8.8.8.8"); got != "未知地区-8.8.8.8" {
		t.Errorf("GetAddrByIp(公网) = %q", got)
	}
}
