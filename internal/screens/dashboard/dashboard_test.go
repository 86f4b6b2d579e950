package dashboard

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/nadavh/skillscope/internal/api"
	"github.com/nadavh/skillscope/internal/session"
)

func testDashboard() (*DashboardScreen, *session.Session) {
	sess := session.New(false)
	d := New(api.New(zap.NewNop(), "http://unreachable.invalid"), sess, zap.NewNop())
	return d, sess
}

func TestDashboard_FetchCommandNeverTouchesSession(t *testing.T) {
	d, sess := testDashboard()

	// The command runs off the event loop, so any session access inside
	// it races with the renderer. All it may do is report back.
	msg := d.fetchMatches()()

	if sess.Employee != nil || sess.EmployeeLoaded {
		t.Error("command mutated the employee state directly")
	}
	if sess.MatchesLoaded || sess.Matches != nil {
		t.Error("command mutated the matches state directly")
	}
	loaded, ok := msg.(matchesLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want matchesLoadedMsg", msg)
	}
	if loaded.Err == nil {
		t.Error("unreachable backend should surface an error in the message")
	}
}

func TestDashboard_LoadAdoptsProfileOnUpdate(t *testing.T) {
	d, sess := testDashboard()

	employee := &api.Employee{ID: "7", Name: "Dana"}
	matches := []api.Match{{PositionID: "p1", Name: "Team Lead", Score: 92}}
	scr, _ := d.Update(matchesLoadedMsg{Matches: matches, Employee: employee})
	d = scr.(*DashboardScreen)

	if sess.Employee != employee || !sess.EmployeeLoaded {
		t.Error("fetched profile not adopted during Update")
	}
	if !sess.MatchesLoaded || len(sess.Matches) != 1 {
		t.Errorf("matches not stored: loaded=%v len=%d", sess.MatchesLoaded, len(sess.Matches))
	}
}

func TestDashboard_LoadErrorRendersEmptyState(t *testing.T) {
	d, sess := testDashboard()

	scr, _ := d.Update(matchesLoadedMsg{MeErr: errors.New("401"), Err: errors.New("503")})
	d = scr.(*DashboardScreen)

	if !sess.MatchesLoaded {
		t.Error("guard must be set even on failure")
	}
	if view := d.View(100, 30); view == "" {
		t.Error("expected renderable empty state")
	}
}

func TestDashboard_ScanTickStopsOnceLoaded(t *testing.T) {
	d, sess := testDashboard()

	scr, cmd := d.Update(scanTickMsg{})
	d = scr.(*DashboardScreen)
	if cmd == nil {
		t.Fatal("ticker should keep running while loading")
	}

	sess.MatchesLoaded = true
	_, cmd = d.Update(scanTickMsg{})
	if cmd != nil {
		t.Error("ticker should stop once matches are loaded")
	}
}
