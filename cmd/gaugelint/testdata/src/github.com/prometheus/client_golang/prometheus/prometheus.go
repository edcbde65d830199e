package prometheus

type Opts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

type GaugeOpts Opts

type Gauge interface {
	Set(float64)
}

type gauge struct{ v float64 }

func (g *gauge) Set(v float64) { g.v = v }

func NewGauge(opts GaugeOpts) Gauge {
	return &gauge{}
}
