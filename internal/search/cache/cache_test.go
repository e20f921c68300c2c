package cache

import "testing"

func TestBuildKeyFoldsCase(t *testing.T) {
	if buildKey("search", "Python", 10) != buildKey("search", "python", 10) {
		t.Error("keys for case variants of the same term must match")
	}
}

func TestBuildKeyDiscriminates(t *testing.T) {
	base := buildKey("search", "python", 10)
	if buildKey("autocomplete", "python", 10) == base {
		t.Error("different kinds must produce different keys")
	}
	if buildKey("search", "python", 20) == base {
		t.Error("different limits must produce different keys")
	}
	if buildKey("search", "ruby", 10) == base {
		t.Error("different terms must produce different keys")
	}
}
