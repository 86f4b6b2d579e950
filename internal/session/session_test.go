package session

import (
	"reflect"
	"testing"

	"github.com/nadavh/skillscope/internal/api"
)

func TestToggleLiked(t *testing.T) {
	s := New(false)

	ids := s.ToggleLiked("p2")
	if !reflect.DeepEqual(ids, []string{"p2"}) {
		t.Errorf("ids = %v", ids)
	}
	ids = s.ToggleLiked("p1")
	if !reflect.DeepEqual(ids, []string{"p1", "p2"}) {
		t.Errorf("ids = %v, want sorted", ids)
	}

	// Toggling again removes the mark.
	ids = s.ToggleLiked("p2")
	if !reflect.DeepEqual(ids, []string{"p1"}) {
		t.Errorf("ids = %v after untoggle", ids)
	}
}

func TestAdoptEmployee_SeedsMarks(t *testing.T) {
	s := New(false)
	s.AdoptEmployee(&api.Employee{
		ID: "7",
		LikedPositions: []api.LikedPosition{
			{PositionID: "p3"},
			{PositionID: "p1"},
		},
		StarPosition: "p3",
	})

	if !s.EmployeeLoaded {
		t.Error("EmployeeLoaded not set")
	}
	if !reflect.DeepEqual(s.LikedIDs(), []string{"p1", "p3"}) {
		t.Errorf("LikedIDs = %v", s.LikedIDs())
	}
	if s.Starred != "p3" {
		t.Errorf("Starred = %q", s.Starred)
	}
}

func TestAdoptEmployee_NilMarksLoaded(t *testing.T) {
	s := New(false)
	s.AdoptEmployee(nil)
	if !s.EmployeeLoaded {
		t.Error("a failed fetch must still set the guard so it is not retried on remount")
	}
}

func TestResetAssessment(t *testing.T) {
	s := New(true)
	if err := s.Answers.Set(1, 5); err != nil {
		t.Fatal(err)
	}
	s.Result = &api.AssessmentResult{AISummary: "x"}
	s.Degraded = true

	s.ResetAssessment()

	if s.Answers.Count() != 0 {
		t.Error("answers not cleared")
	}
	if s.Result != nil || s.Degraded {
		t.Error("result state not cleared")
	}
}
