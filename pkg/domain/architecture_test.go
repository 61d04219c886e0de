package domain

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestPublicPackagesStayOutOfInternal ensures the exported layers depend only
// on the standard library and each other. Stores, blob drivers and clients
// reach the domain through its interfaces, never the other way around.
func TestPublicPackagesStayOutOfInternal(t *testing.T) {
	internalPrefix := "codelistcore/internal"

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, "codelistcore/pkg/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	seen := make(map[string]struct{})
	for _, pkg := range pkgs {
		for importPath := range pkg.Imports {
			if importPath == internalPrefix || strings.HasPrefix(importPath, internalPrefix+"/") {
				seen[pkg.PkgPath+": "+importPath] = struct{}{}
			}
		}
	}

	if len(seen) > 0 {
		violations := make([]string, 0, len(seen))
		for v := range seen {
			violations = append(violations, v)
		}
		sort.Strings(violations)
		for _, v := range violations {
			t.Errorf("forbidden import of internal package: %s", v)
		}
		t.Fatalf("found %d forbidden imports of internal packages", len(violations))
	}
}
