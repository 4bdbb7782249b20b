package domain

import "testing"

func TestAuditEvent_RecordID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/items/123", "123"},
		{"/items/123/", "123"},
		{"/items/123/publish", "publish"},
		{"/items/123/versions/456", "456"},
		{"/items/", ""},
		{"/items//", ""},
		{"/api/items/abc", "abc"},
		{"/item-types/9", ""},
		{"/users/1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			e := AuditEvent{RequestPath: tt.path}
			if got := e.RecordID(); got != tt.want {
				t.Errorf("RecordID(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestAuditQuery_Matches(t *testing.T) {
	t.Parallel()

	q := NewAuditQuery(FeedPublishes, "")
	if q.PathPattern != RecordPathPattern {
		t.Fatalf("PathPattern = %q", q.PathPattern)
	}

	tests := []struct {
		name string
		ev   AuditEvent
		want bool
	}{
		{"publish", AuditEvent{ActionName: ActionPublish, RequestPath: "/items/1"}, true},
		{"unpublish", AuditEvent{ActionName: ActionUnpublish, RequestPath: "/items/1"}, true},
		{"update ignored", AuditEvent{ActionName: ActionUpdate, RequestPath: "/items/1"}, false},
		{"other action ignored", AuditEvent{ActionName: Action("destroy"), RequestPath: "/items/1"}, false},
		{"non record path", AuditEvent{ActionName: ActionPublish, RequestPath: "/uploads/1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := q.Matches(tt.ev); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	scoped := NewAuditQuery(FeedUpdates, "u1")
	if scoped.Matches(AuditEvent{ActorID: "u2", ActionName: ActionUpdate, RequestPath: "/items/1"}) {
		t.Error("scoped query matched another actor")
	}
	if !scoped.Matches(AuditEvent{ActorID: "u1", ActionName: ActionUpdate, RequestPath: "/items/1"}) {
		t.Error("scoped query rejected its actor")
	}
}

func TestAction_IsValid(t *testing.T) {
	t.Parallel()

	for _, a := range []Action{ActionUpdate, ActionPublish, ActionUnpublish} {
		if !a.IsValid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if Action("create").IsValid() {
		t.Error("create should not be valid")
	}
}
