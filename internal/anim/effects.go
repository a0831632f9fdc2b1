package anim

// Break shrinks, fades and spins a block towards a fixed terminal state. It
// is started on blocks whose row was cleared.
type Break struct {
	clock
	startAngle, endAngle float64
	endScale             float64
	flash                float64
}

// NewBreak creates a break animation. The block turns from startAngle to
// endAngle while its scale drops to endScale and its opacity to zero.
func NewBreak(startAngle, endAngle, endScale float64, duration int) *Break {
	return &Break{
		clock:      newClock(duration),
		startAngle: startAngle,
		endAngle:   endAngle,
		endScale:   endScale,
		flash:      0.6,
	}
}

func (b *Break) apply(v *Visual, p float64) {
	v.Angle = b.startAngle + (b.endAngle-b.startAngle)*p
	v.SetScale(1 + (b.endScale-1)*p)
	v.SetOpacity(1 - p)
	// Brightness peaks halfway through.
	v.Brightness = 1 + b.flash*(1-(2*p-1)*(2*p-1))
}

func (b *Break) Perform(v *Visual, interpolation float64) {
	b.apply(v, b.progress(interpolation))
}

func (b *Break) Finish(v *Visual) {
	if b.finish() {
		b.apply(v, 1)
	}
}

// Transition cross-fades a display from its previous content to its new
// content.
type Transition struct {
	clock
}

// NewTransition creates a cross-fade lasting duration ticks.
func NewTransition(duration int) *Transition {
	return &Transition{clock: newClock(duration)}
}

func (t *Transition) Perform(v *Visual, interpolation float64) {
	v.SetTransition(t.progress(interpolation))
}

func (t *Transition) Finish(v *Visual) {
	if t.finish() {
		v.SetTransition(1)
	}
}

// Distortion drives a display's glitch effect: a noise amplitude that decays
// linearly from Amplitude to zero.
type Distortion struct {
	clock
	Amplitude float64
}

// NewDistortion creates a decaying distortion.
func NewDistortion(amplitude float64, duration int) *Distortion {
	return &Distortion{clock: newClock(duration), Amplitude: amplitude}
}

func (d *Distortion) Perform(v *Visual, interpolation float64) {
	v.SetNoise(d.Amplitude * (1 - d.progress(interpolation)))
}

func (d *Distortion) Finish(v *Visual) {
	if d.finish() {
		v.SetNoise(0)
	}
}
