// Package device shows a Switch that depends on the Device abstraction
// instead of on any concrete appliance.
package device

import "github.com/roach88/solid/internal/logging"

// Device is anything a Switch can control.
type Device interface {
	TurnOn()
	TurnOff()
}

// LightBulb reports its state changes to a sink.
type LightBulb struct {
	sink logging.Sink
}

func NewLightBulb(sink logging.Sink) *LightBulb {
	return &LightBulb{sink: sink}
}

func (b *LightBulb) TurnOn()  { b.sink.Line("LightBulb is on") }
func (b *LightBulb) TurnOff() { b.sink.Line("LightBulb is off") }

// Fan is a second Device; Switch works with it unchanged.
type Fan struct {
	sink logging.Sink
}

func NewFan(sink logging.Sink) *Fan {
	return &Fan{sink: sink}
}

func (f *Fan) TurnOn()  { f.sink.Line("Fan is spinning") }
func (f *Fan) TurnOff() { f.sink.Line("Fan is stopped") }

// Switch toggles a Device. It starts off.
type Switch struct {
	device Device
	on     bool
}

func NewSwitch(device Device) *Switch {
	return &Switch{device: device}
}

// Press turns the device on if it is off, and off if it is on.
func (s *Switch) Press() {
	if s.on {
		s.device.TurnOff()
	} else {
		s.device.TurnOn()
	}
	s.on = !s.on
}

func (s *Switch) IsOn() bool { return s.on }
