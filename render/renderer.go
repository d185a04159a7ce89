package render

import (
	"github.com/lixenwraith/marionette/engine"
)

// Renderer consumes published skeletons. The animation core produces
// plain transforms; adapters apply them to whatever scene
// representation is in use.
type Renderer interface {
	Render(engine.Skeleton)
}
