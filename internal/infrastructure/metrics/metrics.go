package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"bargain/internal/domain/entity"
)

const namespace = "bargain"

// Channels a table can be requested through.
const (
	ChannelHTTP = "http"
	ChannelBot  = "bot"
)

type Recorder struct {
	tables *prometheus.CounterVec
	rows   prometheus.Histogram
	price  prometheus.Histogram
}

func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		tables: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tables_total",
			Help:      "Offer tables computed, by request channel and input state.",
		}, []string{"channel", "state"}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "table_rows",
			Help:      "Rows in computed offer tables.",
			Buckets:   prometheus.LinearBuckets(0, 5, 5), //nolint:mnd
		}),
		price: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "asking_price",
			Help:      "Asking prices of ready inputs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), //nolint:mnd
		}),
	}

	for _, c := range []prometheus.Collector{r.tables, r.rows, r.price} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) ObserveTable(channel string, table entity.Table) {
	r.tables.WithLabelValues(channel, table.State.String()).Inc()
	r.rows.Observe(float64(len(table.Rows)))

	if !table.IsEmpty() {
		r.price.Observe(table.Price)
	}
}
