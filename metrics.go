package folio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes registry state to Prometheus. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	reloads       *prometheus.CounterVec
	socialsActive prometheus.Gauge
	socialsTotal  prometheus.Gauge
	info          *prometheus.GaugeVec
	limited       prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		reloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_config_reloads_total",
			Help: "Config reload attempts by result.",
		}, []string{"result"}),
		socialsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "folio_social_links_active",
			Help: "Number of active social links.",
		}),
		socialsTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "folio_social_links",
			Help: "Number of configured social links.",
		}),
		info: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "folio_site_info",
			Help: "Constant 1, labelled with the current site title and language.",
		}, []string{"title", "lang"}),
		limited: f.NewCounter(prometheus.CounterOpts{
			Name: "folio_api_requests_limited_total",
			Help: "API requests rejected by the per-IP rate limit.",
		}),
	}
}

func (m *Metrics) rateLimited() {
	if m != nil {
		m.limited.Inc()
	}
}

func (m *Metrics) reloaded(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.reloads.WithLabelValues(result).Inc()
}

func (m *Metrics) observe(r *Registry) {
	if m == nil || r == nil {
		return
	}
	m.socialsActive.Set(float64(len(r.ActiveSocials())))
	m.socialsTotal.Set(float64(len(r.cfg.Socials)))
	m.info.Reset()
	m.info.WithLabelValues(r.cfg.Site.Title, r.cfg.Locale.EffectiveLang()).Set(1)
}
