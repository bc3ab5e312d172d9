package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/callboard/callboard/internal/agentqueue"
	"github.com/callboard/callboard/internal/backend"
)

// queueCollector exposes the current agent queue snapshot as Prometheus
// metrics. Values are read from the poller's cache at scrape time, so a
// scrape never hits the backend.
type queueCollector struct {
	poller *agentqueue.Poller

	agents  *prometheus.Desc
	sipUp   *prometheus.Desc
	snapAge *prometheus.Desc
}

func newQueueCollector(poller *agentqueue.Poller) *queueCollector {
	return &queueCollector{
		poller: poller,
		agents: prometheus.NewDesc(
			"callboard_agents",
			"Number of agents in the queue by state.",
			[]string{"state"}, nil,
		),
		sipUp: prometheus.NewDesc(
			"callboard_agents_sip_registered",
			"Number of agents with an active SIP registration.",
			nil, nil,
		),
		snapAge: prometheus.NewDesc(
			"callboard_queue_snapshot_age_seconds",
			"Seconds since the agent queue snapshot was last refreshed.",
			nil, nil,
		),
	}
}

func (c *queueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.agents
	ch <- c.sipUp
	ch <- c.snapAge
}

func (c *queueCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.poller.Snapshot()
	if snap == nil {
		return
	}

	ch <- prometheus.MustNewConstMetric(c.agents, prometheus.GaugeValue,
		float64(snap.Summary.Available), string(backend.AgentAvailable))
	ch <- prometheus.MustNewConstMetric(c.agents, prometheus.GaugeValue,
		float64(snap.Summary.Busy), string(backend.AgentBusy))
	ch <- prometheus.MustNewConstMetric(c.agents, prometheus.GaugeValue,
		float64(snap.Summary.Offline), string(backend.AgentOffline))

	var sip int
	for _, a := range snap.Agents {
		if a.SIPRegistered {
			sip++
		}
	}
	ch <- prometheus.MustNewConstMetric(c.sipUp, prometheus.GaugeValue, float64(sip))

	if last := c.poller.LastSuccess(); !last.IsZero() {
		ch <- prometheus.MustNewConstMetric(c.snapAge, prometheus.GaugeValue,
			time.Since(last).Seconds())
	}
}
