package actuator

import "fmt"

// recorder captures notifications as strings in emission order
type recorder struct {
	log []string
}

func (r *recorder) CylinderStateChanged(old, current CylinderState) {
	r.log = append(r.log, fmt.Sprintf("cyl %s->%s", old, current))
}

func (r *recorder) CylinderUnlocked() {
	r.log = append(r.log, "unlock")
}

func (r *recorder) PickStateChanged(old, current PickState) {
	r.log = append(r.log, fmt.Sprintf("pick %s->%s", old, current))
}

func (r *recorder) PickMoved(oldRotation, rotation float64) {
	r.log = append(r.log, fmt.Sprintf("moved %.2f->%.2f", oldRotation, rotation))
}

func (r *recorder) count(entry string) int {
	n := 0
	for _, e := range r.log {
		if e == entry {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.log = r.log[:0]
}
