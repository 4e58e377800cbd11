package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-waypoint-defense/pkg/geom"
)

func lPath() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
}

func TestPathFollower_Advance_SingleSegment(t *testing.T) {
	f := &PathFollower{Waypoints: lPath()}

	f.Advance(5, 1) // 5 единиц по сегменту длиной 10
	assert.Equal(t, 0, f.PathIndex)
	assert.InDelta(t, 0.5, f.SegmentProgress, 1e-9)

	pos := f.Position()
	assert.InDelta(t, 5.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
}

func TestPathFollower_Advance_CrossesWaypoint(t *testing.T) {
	f := &PathFollower{Waypoints: lPath()}

	// 15 единиц: первый сегмент целиком и половина второго.
	f.Advance(15, 1)
	assert.Equal(t, 1, f.PathIndex)
	assert.InDelta(t, 0.5, f.SegmentProgress, 1e-9)

	pos := f.Position()
	assert.InDelta(t, 10.0, pos.X, 1e-9)
	assert.InDelta(t, 5.0, pos.Y, 1e-9)
}

func TestPathFollower_Advance_ClampsAtEnd(t *testing.T) {
	f := &PathFollower{Waypoints: lPath()}

	f.Advance(1000, 1)
	assert.True(t, f.HasReachedEnd())
	assert.Equal(t, len(f.Waypoints)-1, f.PathIndex)
	assert.Equal(t, 0.0, f.SegmentProgress)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, f.Position())

	// Дальнейшее продвижение ничего не меняет.
	f.Advance(50, 1)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, f.Position())
}

func TestPathFollower_Advance_ZeroLengthSegment(t *testing.T) {
	f := &PathFollower{Waypoints: []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0},
	}}

	// Дублированная вершина проходится мгновенно, движение не зависает.
	f.Advance(15, 1)
	assert.Equal(t, 2, f.PathIndex)
	assert.InDelta(t, 0.5, f.SegmentProgress, 1e-9)
	assert.InDelta(t, 15.0, f.Position().X, 1e-9)
}

func TestPathFollower_ProgressFraction(t *testing.T) {
	f := &PathFollower{Waypoints: lPath()}
	require.Equal(t, 0.0, f.ProgressFraction())

	prev := 0.0
	for i := 0; i < 10; i++ {
		f.Advance(2, 1)
		p := f.ProgressFraction()
		assert.GreaterOrEqual(t, p, prev, "progress must be monotonic")
		prev = p
	}
	assert.InDelta(t, 1.0, f.ProgressFraction(), 1e-9)
}

func TestPathFollower_DegeneratePaths(t *testing.T) {
	empty := &PathFollower{}
	assert.Equal(t, geom.Point{}, empty.Position())
	assert.Equal(t, 1.0, empty.ProgressFraction())

	single := &PathFollower{Waypoints: []geom.Point{{X: 3, Y: 3}}}
	assert.True(t, single.HasReachedEnd())
	assert.Equal(t, geom.Point{X: 3, Y: 3}, single.Position())
}
