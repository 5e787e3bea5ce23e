package nav

import "testing"

func TestBuildMarksActiveSection(t *testing.T) {
	items := Build("/productos")
	if len(items) != 3 {
		t.Fatalf("expected 3 nav items, got %d", len(items))
	}
	for _, it := range items {
		switch it.Href {
		case "/productos":
			if !it.Active {
				t.Errorf("%s should be active", it.Href)
			}
		default:
			if it.Active {
				t.Errorf("%s should not be active", it.Href)
			}
		}
	}
}

func TestBuildHomeOnlyActiveAtRoot(t *testing.T) {
	for _, it := range Build("/") {
		if it.Href == "/" && !it.Active {
			t.Error("home should be active at root")
		}
	}
	for _, it := range Build("/categorias") {
		if it.Href == "/" && it.Active {
			t.Error("home must not be active on a section page")
		}
	}
}

func TestBuildSubpathActivatesSection(t *testing.T) {
	for _, it := range Build("/productos/abc") {
		if it.Href == "/productos" && !it.Active {
			t.Error("section should stay active on subpaths")
		}
	}
}

func TestBreadcrumbsRoot(t *testing.T) {
	crumbs := Breadcrumbs("/")
	if len(crumbs) != 1 {
		t.Fatalf("expected single crumb at root, got %d", len(crumbs))
	}
	if crumbs[0].LabelKey != "nav.home" || !crumbs[0].Active {
		t.Fatalf("unexpected root crumb: %+v", crumbs[0])
	}
}

func TestBreadcrumbsKnownSection(t *testing.T) {
	crumbs := Breadcrumbs("/productos")
	if len(crumbs) != 2 {
		t.Fatalf("expected 2 crumbs, got %d", len(crumbs))
	}
	last := crumbs[1]
	if last.LabelKey != "nav.products" || last.Href != "/productos" || !last.Active {
		t.Fatalf("unexpected section crumb: %+v", last)
	}
	if crumbs[0].Active {
		t.Fatal("home crumb must not be active on a section page")
	}
}

func TestBreadcrumbsPrettifiesDeepSegments(t *testing.T) {
	crumbs := Breadcrumbs("/productos/primeros-auxilios")
	if len(crumbs) != 3 {
		t.Fatalf("expected 3 crumbs, got %d", len(crumbs))
	}
	leaf := crumbs[2]
	if leaf.Label != "Primeros auxilios" || !leaf.Active {
		t.Fatalf("unexpected leaf crumb: %+v", leaf)
	}
	if leaf.Href != "/productos/primeros-auxilios" {
		t.Fatalf("unexpected leaf href: %s", leaf.Href)
	}
}
