package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	return r
}

func TestResolveCompoundKeys(t *testing.T) {
	r := mustRegistry(t)

	testCases := []struct {
		name        string
		rawTarget   string
		userCommand string
		wantKind    TargetKind
		wantContain string
	}{
		{
			name:        "instagram chats resolves to the inbox URL",
			rawTarget:   "instagram",
			userCommand: "open my instagram chats",
			wantKind:    KindURL,
			wantContain: "direct/inbox",
		},
		{
			name:        "twitter messages prefers the compound entry",
			rawTarget:   "twitter",
			userCommand: "open twitter messages",
			wantKind:    KindURL,
			wantContain: "twitter.com/messages",
		},
		{
			name:        "gmail inbox",
			rawTarget:   "gmail",
			userCommand: "open my gmail inbox",
			wantKind:    KindURL,
			wantContain: "mail.google.com",
		},
		{
			name:        "plain target without a suffix in the command",
			rawTarget:   "twitter",
			userCommand: "open twitter",
			wantKind:    KindURL,
			wantContain: "twitter.com/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(context.Background(), tc.rawTarget, tc.userCommand, "", nil)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind = %s, want %s (target %+v)", got.Kind, tc.wantKind, got)
			}
			if !strings.Contains(got.Value, tc.wantContain) {
				t.Errorf("value %q does not contain %q", got.Value, tc.wantContain)
			}
		})
	}
}

func TestResolveFollowOnUsesAppContext(t *testing.T) {
	r := mustRegistry(t)

	got := r.Resolve(context.Background(), "chats", "open chats", "instagram", nil)
	if got.Kind != KindURL || !strings.Contains(got.Value, "direct/inbox") {
		t.Fatalf("follow-on 'open chats' after instagram resolved to %+v", got)
	}

	// Without a carried-over context the same phrase has nothing to bind to.
	got = r.Resolve(context.Background(), "chats", "open chats", "", nil)
	if strings.Contains(got.Value, "instagram") {
		t.Fatalf("context-free 'chats' must not bind to instagram, got %+v", got)
	}
}

func TestResolveBraveIsPath(t *testing.T) {
	r := mustRegistry(t)
	got := r.Resolve(context.Background(), "brave", "open brave", "", nil)
	if got.Kind != KindPath {
		t.Fatalf("kind = %s, want path", got.Kind)
	}
	if !strings.Contains(strings.ToLower(got.Value), "brave") {
		t.Errorf("unexpected value %q", got.Value)
	}
}

func TestResolveFuzzyTypo(t *testing.T) {
	r := mustRegistry(t)
	got := r.Resolve(context.Background(), "slak", "slak", "", nil)
	if got.Kind == KindNone {
		t.Fatalf("fuzzy match should recover the slack entry, got %+v", got)
	}
}

func TestResolveRawURLPassthrough(t *testing.T) {
	r := mustRegistry(t)
	got := r.Resolve(context.Background(), "example.org/docs", "open example.org/docs", "", nil)
	if got.Kind != KindURL {
		t.Fatalf("kind = %s, want url", got.Kind)
	}
	if got.Value != "https://example.org/docs" {
		t.Errorf("value = %q", got.Value)
	}
}

type fakeNormalizer struct {
	reply string
	err   error
	calls int
}

func (f *fakeNormalizer) NormalizeTarget(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestResolvePlannerFallback(t *testing.T) {
	r := mustRegistry(t)

	planner := &fakeNormalizer{reply: "URL:https://zzqqy.example/"}
	got := r.Resolve(context.Background(), "zzqqy", "open zzqqy", "", planner)
	if planner.calls != 1 {
		t.Fatalf("planner consulted %d times, want 1", planner.calls)
	}
	if got.Kind != KindURL || got.Value != "https://zzqqy.example/" {
		t.Errorf("unexpected target %+v", got)
	}

	failing := &fakeNormalizer{err: errors.New("planner down")}
	got = r.Resolve(context.Background(), "zzqqy", "open zzqqy", "", failing)
	if got.Kind != KindNone {
		t.Errorf("expected none on planner failure, got %+v", got)
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		value string
		want  TargetKind
	}{
		{"https://twitter.com/", KindURL},
		{"www.example.com", KindURL},
		{`C:\Program Files\app\app.exe`, KindPath},
		{"launcher.lnk", KindPath},
		{"spotify", KindApp},
		{"ms-clock:", KindApp},
		{"", KindNone},
	}
	for _, tc := range testCases {
		if got := Classify(tc.value); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.value, got, tc.want)
		}
	}
}
