package config

import "testing"

func TestViewCatalogValid(t *testing.T) {
	if ViewCount() < 2 {
		t.Fatalf("Expected at least 2 views, got %d", ViewCount())
	}

	for i := 0; i < ViewCount(); i++ {
		v := View(i)
		if v.Title == "" {
			t.Errorf("View %d has no title", i)
		}
		if v.Description == "" {
			t.Errorf("View %d has no description", i)
		}
		if v.Zoom <= 0 {
			t.Errorf("View %d has non-positive zoom %v", i, v.Zoom)
		}
		if v.Background[0].A == 0 || v.Background[1].A == 0 {
			t.Errorf("View %d has a transparent background stop", i)
		}
	}
}

func TestMaxScroll(t *testing.T) {
	want := float64(ViewCount()-1) * 600
	if got := MaxScroll(600); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := MaxScroll(0); got != 0 {
		t.Errorf("Expected 0 for zero height, got %v", got)
	}
}
