package components

import "github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"

// Link is a static, setup-time connection between two entities.
// Its opacity is derived from the endpoint distance every frame; links are
// never added or removed after setup.
type Link struct {
	A, B ecs.EntityID
	// Pipeline is true when the endpoints belong to different pipeline stages.
	Pipeline bool
}

// FlowToken is a marker travelling along a link from A to B.
type FlowToken struct {
	Link     int     // index into the link list
	Progress float64 // in [0, 1)
	Speed    float64 // progress added per tick
}

// Advance moves the token one tick along its link, wrapping to the start
// when it reaches the end.
func (f *FlowToken) Advance() {
	f.Progress += f.Speed
	if f.Progress >= 1 {
		f.Progress = 0
	}
}
