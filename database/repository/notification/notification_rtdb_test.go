package notificationRepo

import (
	"strings"
	"testing"
)

func TestNewInboxEntry(t *testing.T) {
	id, path := newInboxEntry("u1")
	if id == "" {
		t.Fatalf("expected a generated id")
	}
	if path != "notifications/u1/"+id {
		t.Errorf("unexpected path %q", path)
	}

	other, _ := newInboxEntry("u1")
	if other == id {
		t.Errorf("ids must be unique, got %q twice", id)
	}
	if strings.Contains(id, "/") {
		t.Errorf("id %q would nest the record", id)
	}
}
