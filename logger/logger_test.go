package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"admin_api_key", "k", "path", "/cart", "Authorization", "Bearer x", "dangling"})

	want := []interface{}{"admin_api_key", "[REDACTED]", "path", "/cart", "Authorization", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("len: got=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kv[%d]: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"development", "production", "test"} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.With("mode", mode).Debug("ok")
	}
}
