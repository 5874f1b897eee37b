package system

import (
	"testing"

	"github.com/milk9111/climber/ecs/component"
)

func TestPlayerMovementHorizontal(t *testing.T) {
	cases := []struct {
		name       string
		startX     float64
		left       bool
		right      bool
		carry      float64
		wantX      float64
		wantFacing component.Facing
	}{
		{name: "left", startX: 100, left: true, wantX: 95, wantFacing: component.FacingLeft},
		{name: "right", startX: 100, right: true, wantX: 105, wantFacing: component.FacingRight},
		{name: "both_cancel", startX: 100, left: true, right: true, wantX: 100, wantFacing: component.FacingRight},
		{name: "clamp_left_wall", startX: 2, left: true, wantX: 0, wantFacing: component.FacingLeft},
		{name: "clamp_right_wall", startX: 368, right: true, wantX: 370, wantFacing: component.FacingRight},
		{name: "carry_from_platform", startX: 100, carry: -2, wantX: 98, wantFacing: component.FacingRight},
		{name: "carry_into_wall", startX: 369, right: true, carry: 2, wantX: 370, wantFacing: component.FacingRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newRunningWorld(t, nil)
			p := playerOf(t, w)
			p.t.X = c.startX
			p.input.Left = c.left
			p.input.Right = c.right
			p.player.CarryX = c.carry

			NewPlayerMovementSystem().Update(w)

			if p.t.X != c.wantX {
				t.Fatalf("expected x %v, got %v", c.wantX, p.t.X)
			}
			if p.player.Facing != c.wantFacing {
				t.Fatalf("expected facing %v, got %v", c.wantFacing, p.player.Facing)
			}
			if p.t.Y != 52 || p.player.PrevY != 50 {
				t.Fatalf("expected fall from 50 to 52, got prev=%v y=%v", p.player.PrevY, p.t.Y)
			}
		})
	}
}

func TestPlayerMovementFallOut(t *testing.T) {
	w := newRunningWorld(t, nil)
	p := playerOf(t, w)
	p.t.Y = 566

	sys := NewPlayerMovementSystem()
	sys.Update(w)
	if mustSession(t, w).State != component.SessionRunning {
		t.Fatalf("bottom edge at 598 must not end the session")
	}

	sys.Update(w)
	sess := mustSession(t, w)
	if sess.State != component.SessionEnded || sess.Reason != component.EndFallOut {
		t.Fatalf("expected fall-out end, got %v/%v", sess.State, sess.Reason)
	}
	ended := endedEvents(w)
	if len(ended) != 1 || ended[0].Reason != component.EndFallOut {
		t.Fatalf("expected one fall-out event, got %+v", ended)
	}

	y := p.t.Y
	sys.Update(w)
	if p.t.Y != y {
		t.Fatalf("an ended session must stay frozen")
	}
}
