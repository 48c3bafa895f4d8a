package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/ecs"
	"github.com/milk9111/doodleshoot/geom"
)

type TriggerKind uint8

const (
	TriggerSpring TriggerKind = iota + 1
	TriggerCoin
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerSpring:
		return "spring"
	case TriggerCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Attachment binds a trigger to a cloud. It does not own the cloud; when the
// cloud is gone the trigger simply stops following it.
type Attachment struct {
	Offset cp.Vector
	Cloud  ecs.Entity
}

// Trigger is an area that fires an effect when the doodle enters it.
type Trigger struct {
	Kind       TriggerKind
	Collider   geom.Collider
	Attachment *Attachment
}
