package effects

// Volume is one post-processing effect with a blend weight. Weight 0 means
// the effect is invisible; 1 is full strength.
type Volume struct {
	name   string
	weight float64
}

func (v *Volume) Name() string {
	return v.name
}

func (v *Volume) Weight() float64 {
	return v.weight
}

// SetWeight clamps and stores the blend weight. Usable directly as an
// optional weight-setter handle.
func (v *Volume) SetWeight(w float64) {
	if w < 0 {
		w = 0
	}
	if w > 1 {
		w = 1
	}
	v.weight = w
}

// Names of the volumes a Stack instantiates.
const (
	IsoVolumeName  = "Iso Volume"
	ZoomVolumeName = "Zoom Volume"
	FovVolumeName  = "Fov Volume"
)

// Find returns the named volume, or nil when it doesn't exist. Callers are
// expected to treat a nil result as "effect absent", not as an error.
func (s *Stack) Find(name string) *Volume {
	if s == nil {
		return nil
	}
	for _, v := range s.volumes {
		if v.name == name {
			return v
		}
	}
	return nil
}
