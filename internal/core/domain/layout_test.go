package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/aotc/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultCacheRoot",
			got:      domain.DefaultCacheRoot("/home/u"),
			expected: filepath.Join("/home/u", ".aotc", "cache"),
		},
		{
			name:     "RuntimeArchivePath",
			got:      domain.RuntimeArchivePath("/opt/aotc"),
			expected: filepath.Join("/opt/aotc", "lib", "aotc-rt.jar"),
		},
		{
			name:     "OSArchLibDir",
			got:      domain.OSArchLibDir("/opt/aotc", domain.OSLinux, domain.ArchX8664),
			expected: filepath.Join("/opt/aotc", "lib", "linux", "x86_64"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}
