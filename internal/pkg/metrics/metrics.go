package metrics

import (
	"fmt"

	"bridge_tokens/internal/app/port"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "token_config"

// Recorder collects run counters on a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	records     prometheus.Gauge
	descriptors *prometheus.GaugeVec
	skipped     *prometheus.GaugeVec
	dirsCreated prometheus.Counter
	logos       *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mapping_records",
			Help:      "Token mapping records loaded from the manifest.",
		}),
		descriptors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tokens",
			Help:      "Token descriptors written per chain.",
		}, []string{"chain"}),
		skipped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_records",
			Help:      "Records left out of a chain list for lacking address, name and symbol.",
		}, []string{"chain"}),
		dirsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logo_dirs_created_total",
			Help:      "Logo destination directories created.",
		}),
		logos: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logos_total",
			Help:      "Logo copy decisions by result.",
		}, []string{"result"}),
	}
	r.registry.MustRegister(r.records, r.descriptors, r.skipped, r.dirsCreated, r.logos)
	return r
}

func (r *Recorder) ObserveRecords(count int) {
	r.records.Set(float64(count))
}

func (r *Recorder) ObserveDescriptors(chain string, count int) {
	r.descriptors.WithLabelValues(chain).Set(float64(count))
}

func (r *Recorder) ObserveSkipped(chain string, count int) {
	r.skipped.WithLabelValues(chain).Set(float64(count))
}

func (r *Recorder) ObserveCopy(dirCreated, logoCopied bool) {
	if dirCreated {
		r.dirsCreated.Inc()
	}
	if logoCopied {
		r.logos.WithLabelValues("copied").Inc()
	} else {
		r.logos.WithLabelValues("skipped").Inc()
	}
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in Prometheus text format, for node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveRecords(int)             {}
func (Nop) ObserveDescriptors(string, int) {}
func (Nop) ObserveSkipped(string, int)     {}
func (Nop) ObserveCopy(bool, bool)         {}

var (
	_ port.RunRecorder = (*Recorder)(nil)
	_ port.RunRecorder = Nop{}
)
