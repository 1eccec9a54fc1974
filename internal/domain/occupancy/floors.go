package occupancy

import (
	"sort"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
)

// ValidateFloors verifica la configuración de pisos de una cámara: rangos
// bien formados y sin solapamientos entre pisos. Los huecos son legales (un
// rack sin piso queda sin configurar); los solapamientos se reportan todos,
// nunca se fusionan ni se corrigen en silencio.
func ValidateFloors(chamberID string, floors []*entity.Floor) error {
	for _, f := range floors {
		if f.FromRack < 1 || f.ToRack < f.FromRack {
			return domain.ErrFloorConfiguration
		}
	}

	ordered := make([]*entity.Floor, len(floors))
	copy(ordered, floors)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].FromRack < ordered[j].FromRack })

	var overlaps []domain.FloorOverlap
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ordered[i], ordered[j]
			if b.FromRack > a.ToRack {
				break // ordenado por FromRack: los siguientes tampoco solapan con a
			}
			overlaps = append(overlaps, domain.FloorOverlap{
				FloorA:   a.FloorNumber,
				FloorB:   b.FloorNumber,
				FromRack: b.FromRack,
				ToRack:   minInt(a.ToRack, b.ToRack),
			})
		}
	}
	if len(overlaps) > 0 {
		return &domain.FloorOverlapError{ChamberID: chamberID, Overlaps: overlaps}
	}
	return nil
}

// FloorCovering devuelve el piso que cubre el número de rack, o nil si el rack
// está sin configurar. Asume pisos ya validados (sin solapamientos).
func FloorCovering(floors []*entity.Floor, floorNumber, rackNumber int) *entity.Floor {
	for _, f := range floors {
		if f.FloorNumber == floorNumber && f.Covers(rackNumber) {
			return f
		}
	}
	return nil
}

// GenerateFloors reparte TotalRacks en FloorCount rangos contiguos de igual
// tamaño; el resto de la división va al último piso. Así auto-configura la
// cámara al crearla, y los pisos pueden editarse después uno a uno.
func GenerateFloors(chamber *entity.Chamber) []*entity.Floor {
	if chamber.FloorCount <= 0 || chamber.TotalRacks <= 0 {
		return nil
	}
	perFloor := chamber.TotalRacks / chamber.FloorCount
	if perFloor == 0 {
		perFloor = 1
	}
	var floors []*entity.Floor
	from := 1
	for n := 1; n <= chamber.FloorCount && from <= chamber.TotalRacks; n++ {
		to := from + perFloor - 1
		if n == chamber.FloorCount || to > chamber.TotalRacks {
			to = chamber.TotalRacks
		}
		floors = append(floors, &entity.Floor{
			ChamberID:   chamber.ID,
			FloorNumber: n,
			FromRack:    from,
			ToRack:      to,
		})
		from = to + 1
	}
	return floors
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
