package occupancy

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// ApplyOverrides estampa las marcas manuales RESERVED/MAINTENANCE sobre la
// proyección. Se consultan después de proyectar: el estado derivado sigue
// disponible en Status, y State() resuelve la precedencia.
func ApplyOverrides(occupancies []RackOccupancy, overrides []*entity.RackOverride) {
	if len(overrides) == 0 {
		return
	}
	byCoord := make(map[coord]string, len(overrides))
	for _, o := range overrides {
		byCoord[coord{floor: o.FloorNumber, rack: o.RackNumber}] = o.State
	}
	for i := range occupancies {
		if state, ok := byCoord[coord{floor: occupancies[i].FloorNumber, rack: occupancies[i].RackNumber}]; ok {
			occupancies[i].Override = state
		}
	}
}
