package healthendpoint

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

func RegisterCollectors(registrar prometheus.Registerer, collectors []prometheus.Collector, includeDefault bool, logger lager.Logger) {

	if includeDefault {
		err := registrar.Register(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		if err != nil {
			logger.Error("Failed to register process collector", err)
		}
		err = registrar.Register(prometheus.NewGoCollector())
		if err != nil {
			logger.Error("Failed to register go collector", err)
		}
	}

	for _, c := range collectors {
		err := registrar.Register(c)
		if err != nil {
			logger.Error("Failed to register collector", err, lager.Data{"collector": c})
		}
	}
}

// Registrar owns a fixed set of named gauges registered up front; Set, Inc
// and Dec on an unknown name log and return instead of panicking.
type Registrar struct {
	gauges map[string]prometheus.Gauge
	logger lager.Logger
}

var _ Health = &Registrar{}

func New(registrar prometheus.Registerer, gauges map[string]prometheus.Gauge, includeDefault bool, logger lager.Logger) *Registrar {
	r := &Registrar{
		gauges: gauges,
		logger: logger,
	}
	if includeDefault {
		r.register(registrar, prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
		r.register(registrar, prometheus.NewGoCollector())
	}
	for _, gauge := range gauges {
		r.register(registrar, gauge)
	}
	return r
}

func (r *Registrar) register(registrar prometheus.Registerer, collector prometheus.Collector) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Info("collector-already-registered", lager.Data{"panic": p})
		}
	}()
	registrar.MustRegister(collector)
}

func (r *Registrar) Set(name string, value float64) {
	gauge, ok := r.gauges[name]
	if !ok {
		r.logger.Info("unknown-gauge", lager.Data{"name": name})
		return
	}
	gauge.Set(value)
}

func (r *Registrar) Inc(name string) {
	gauge, ok := r.gauges[name]
	if !ok {
		r.logger.Info("unknown-gauge", lager.Data{"name": name})
		return
	}
	gauge.Inc()
}

func (r *Registrar) Dec(name string) {
	gauge, ok := r.gauges[name]
	if !ok {
		r.logger.Info("unknown-gauge", lager.Data{"name": name})
		return
	}
	gauge.Dec()
}
