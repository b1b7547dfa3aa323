package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	for _, raw := range []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com/x",
	} {
		if err := Open(raw); err == nil {
			t.Errorf("Open(%q): expected rejection", raw)
		}
	}
}

func TestOpenerCommand(t *testing.T) {
	name, args := openerCommand("https://example.com")
	if name == "" || len(args) == 0 {
		t.Error("expected a launcher command")
	}
	if args[len(args)-1] != "https://example.com" {
		t.Errorf("URL should be the final argument, got %v", args)
	}
}
