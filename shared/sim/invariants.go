package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/slime-soccer/shared/tuning"
)

// ErrInvariant is wrapped by every CheckInvariants failure.
var ErrInvariant = errors.New("state invariant violated")

const positionEpsilon = 1e-9

// CheckInvariants verifies the properties every tick must preserve.
func CheckInvariants(s State, t *tuning.Tuning) error {
	gl := t.GroundLine()
	e := &Engine{t: t}

	for _, side := range [2]Side{Left, Right} {
		sl := s.Slimes[side]
		if sl.X < t.Slime.Radius || sl.X > t.Field.Width-t.Slime.Radius {
			return fmt.Errorf("%w: %s slime x %.3f outside field", ErrInvariant, side, sl.X)
		}
		if sl.Y > gl {
			return fmt.Errorf("%w: %s slime y %.3f below ground", ErrInvariant, side, sl.Y)
		}
		if sl.GoalLineTime != 0 && !e.InOwnGoalZone(side, sl) {
			return fmt.Errorf("%w: %s slime camping timer %.3f outside goal zone", ErrInvariant, side, sl.GoalLineTime)
		}
		if sl.HasBall != (s.Ball.GrabbedBy == OwnerOf(side)) {
			return fmt.Errorf("%w: %s slime HasBall=%v but ball owner is %d", ErrInvariant, side, sl.HasBall, s.Ball.GrabbedBy)
		}
	}

	b := s.Ball
	if b.Y > gl {
		return fmt.Errorf("%w: ball y %.3f below ground", ErrInvariant, b.Y)
	}
	if math.IsNaN(b.X) || math.IsNaN(b.Y) || math.IsNaN(b.VX) || math.IsNaN(b.VY) {
		return fmt.Errorf("%w: ball has NaN component", ErrInvariant)
	}

	if h, ok := s.Holder(); ok {
		if b.GrabbedBy != OwnedByLeft && b.GrabbedBy != OwnedByRight {
			return fmt.Errorf("%w: unknown ball owner %d", ErrInvariant, b.GrabbedBy)
		}
		x, y := HeldPosition(s.Slimes[h], b.GrabAngle, t)
		if math.Abs(x-b.X) > positionEpsilon || math.Abs(y-b.Y) > positionEpsilon {
			return fmt.Errorf("%w: held ball at (%.3f, %.3f), orbit says (%.3f, %.3f)", ErrInvariant, b.X, b.Y, x, y)
		}
	} else if b.GrabAngle != 0 || b.GrabAngularVelocity != 0 {
		return fmt.Errorf("%w: free ball carries grab angle state", ErrInvariant)
	}
	return nil
}
