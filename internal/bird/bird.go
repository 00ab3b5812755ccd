// Package bird models birds by what they can actually do.
//
// There is no Fly method that some birds must refuse. A bird that flies
// is a Flyer, a bird that runs is a Runner, and any Flyer can stand in for
// any other Flyer.
package bird

import "fmt"

// Bird is anything with a name.
type Bird interface {
	Name() string
}

// Flyer is a bird that can fly.
type Flyer interface {
	Bird
	Fly() string
}

// Runner is a bird that can run.
type Runner interface {
	Bird
	Run() string
}

type Duck struct{}

func (Duck) Name() string { return "Duck" }
func (Duck) Fly() string  { return "Duck is flying!" }

type Ostrich struct{}

func (Ostrich) Name() string { return "Ostrich" }
func (Ostrich) Run() string  { return "Ostrich is running!" }

// Move describes how b gets around, preferring flight.
func Move(b Bird) string {
	switch v := b.(type) {
	case Flyer:
		return v.Fly()
	case Runner:
		return v.Run()
	default:
		return fmt.Sprintf("%s stays put", b.Name())
	}
}

// Launch makes every flyer take off and returns what each reported.
func Launch(flyers ...Flyer) []string {
	out := make([]string, len(flyers))
	for i, f := range flyers {
		out[i] = f.Fly()
	}
	return out
}
