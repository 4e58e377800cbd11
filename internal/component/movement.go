// component/movement.go
package component

import "go-waypoint-defense/pkg/geom"

// Position — компонент позиции. Для врагов это кэш, который каждый тик
// пересчитывается из PathFollower; источник истины — индекс на пути.
type Position struct {
	X, Y float64
}

// Velocity — компонент базовой скорости
type Velocity struct {
	Speed float64
}

// PathFollower хранит положение сущности на ломаной пути как пару
// (индекс сегмента, доля пройденного сегмента). Waypoints — общий
// для всех врагов волны список, только для чтения.
type PathFollower struct {
	Waypoints       []geom.Point
	PathIndex       int
	SegmentProgress float64 // [0,1) внутри текущего сегмента
}

// Advance продвигает сущность на speed*dt мировых единиц вдоль пути,
// при необходимости пересекая несколько вершин за один вызов.
// Сегменты нулевой длины (дублированные вершины) проходятся мгновенно.
func (f *PathFollower) Advance(speed, dt float64) {
	remaining := speed * dt
	last := len(f.Waypoints) - 1
	for remaining > 0 && f.PathIndex < last {
		segLen := geom.Dist(f.Waypoints[f.PathIndex], f.Waypoints[f.PathIndex+1])
		if segLen <= 0 {
			f.PathIndex++
			f.SegmentProgress = 0
			continue
		}
		distLeft := (1 - f.SegmentProgress) * segLen
		if remaining < distLeft {
			f.SegmentProgress += remaining / segLen
			remaining = 0
		} else {
			remaining -= distLeft
			f.PathIndex++
			f.SegmentProgress = 0
		}
	}
	if f.PathIndex >= last {
		f.PathIndex = last
		f.SegmentProgress = 0
	}
}

// Position возвращает мировые координаты для текущего (индекс, прогресс).
func (f *PathFollower) Position() geom.Point {
	if len(f.Waypoints) == 0 {
		return geom.Point{}
	}
	if f.PathIndex >= len(f.Waypoints)-1 {
		return f.Waypoints[len(f.Waypoints)-1]
	}
	return geom.Lerp(f.Waypoints[f.PathIndex], f.Waypoints[f.PathIndex+1], f.SegmentProgress)
}

// ProgressFraction — доля пройденного пути: 0 на спавне, 1 на выходе.
func (f *PathFollower) ProgressFraction() float64 {
	last := len(f.Waypoints) - 1
	if last <= 0 {
		return 1
	}
	return (float64(f.PathIndex) + f.SegmentProgress) / float64(last)
}

// HasReachedEnd сообщает, достигнута ли последняя вершина пути.
func (f *PathFollower) HasReachedEnd() bool {
	return f.PathIndex >= len(f.Waypoints)-1
}
