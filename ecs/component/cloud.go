package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doodleshoot/geom"
)

// Cloud is a springy platform. Its body is pulled back toward Anchor, which
// itself drifts by AnchorVelocity on moving clouds.
type Cloud struct {
	Body           Body
	Anchor         geom.Position
	AnchorVelocity cp.Vector
}

// NewCloud anchors the cloud where its body starts.
func NewCloud(body Body) Cloud {
	return Cloud{Body: body, Anchor: body.Collider.Position}
}
