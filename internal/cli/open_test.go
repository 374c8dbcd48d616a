package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stormlightlabs/doctrail/internal/config"
	"github.com/stormlightlabs/doctrail/internal/query"
)

func TestResolveAssetPath(t *testing.T) {
	root := t.TempDir()
	cfg = config.DefaultConfig()
	cfg.DocsRoot = root

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"relative under root", "images/arch.png", filepath.Join(root, "images", "arch.png"), false},
		{"absolute under root", filepath.Join(root, "a.png"), filepath.Join(root, "a.png"), false},
		{"escape via dotdot", "../outside.png", "", true},
		{"absolute outside root", "/etc/passwd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAssetPath(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveAssetPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveAssetPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSectionLabel(t *testing.T) {
	label := sectionLabel(query.SectionTitle{H1: "Orders", H2: "Placing"})
	if label != "Orders › Placing" {
		t.Errorf("sectionLabel = %q", label)
	}
	if !strings.Contains(sectionLabel(query.SectionTitle{H1: "A", H3: "C"}), "C") {
		t.Error("h3 missing from label")
	}
	if sectionLabel(query.SectionTitle{}) != "" {
		t.Error("empty title should yield empty label")
	}
}
