package relay

import "github.com/prometheus/client_golang/prometheus"

// managerMetrics 持有一个 Manager 的 Prometheus 指标。
//
// 每个 Manager 拥有独立的注册表，而不是注册到全局默认注册表，
// 这样多个 Manager 实例（例如测试中各自创建一个）之间不会因
// 指标名冲突而互相干扰。
type managerMetrics struct {
	registry *prometheus.Registry

	candidates prometheus.Gauge
	waiting    prometheus.Gauge
	connected  prometheus.Gauge

	reservationsIssued prometheus.Counter
	reservationsFailed prometheus.Counter
	evictions          prometheus.Counter
}

func newManagerMetrics() *managerMetrics {
	reg := prometheus.NewRegistry()

	m := &managerMetrics{
		registry: reg,
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay_manager",
			Name:      "candidates",
			Help:      "Number of relay candidates currently queued.",
		}),
		waiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay_manager",
			Name:      "waiting",
			Help:      "Number of relays awaiting reservation confirmation.",
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "relay_manager",
			Name:      "connected",
			Help:      "Number of relays with a confirmed reservation.",
		}),
		reservationsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relay_manager",
			Name:      "reservations_issued_total",
			Help:      "Total number of listen_on calls that succeeded.",
		}),
		reservationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relay_manager",
			Name:      "reservations_failed_total",
			Help:      "Total number of listen_on calls that failed.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "relay_manager",
			Name:      "evictions_total",
			Help:      "Total number of relays evicted for being faulty.",
		}),
	}

	reg.MustRegister(
		m.candidates,
		m.waiting,
		m.connected,
		m.reservationsIssued,
		m.reservationsFailed,
		m.evictions,
	)

	return m
}

// Registry 暴露该管理器的 Prometheus 注册表，便于嵌入方将其与自身
// 其他指标一并对外提供。指标被禁用时返回 nil。
func (m *Manager) Registry() *prometheus.Registry {
	if m.metrics == nil {
		return nil
	}
	return m.metrics.registry
}

func (m *Manager) refreshGauges() {
	if m.metrics == nil {
		return
	}
	m.metrics.candidates.Set(float64(len(m.candidates)))
	m.metrics.waiting.Set(float64(len(m.waiting)))
	m.metrics.connected.Set(float64(len(m.connected)))
}
