// component/movement.go
package component

import "go-path-defense/pkg/geom"

// PathProgress хранит положение сущности на маршруте.
// Index is the waypoint most recently reached; the entity is heading for Index+1.
type PathProgress struct {
	Position geom.Point
	Index    int
}
