package scheduling

import "time"

// Overlaps reporta si dos intervalos semiabiertos [s1, e1) y [s2, e2) se
// solapan: s1 < e2 && s2 < e1. Tocar bordes (e1 == s2) no es solape.
// Función pura y simétrica; es el único criterio de conflicto del sistema.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
