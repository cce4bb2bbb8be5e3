package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Teller metrics
	DepositsPosted    prometheus.Counter
	WithdrawalsPosted prometheus.Counter
	PostingDuration   prometheus.Histogram
	PostingAmount     prometheus.Histogram
	PostingErrors     *prometheus.CounterVec

	// Transfer metrics
	TransfersExecuted prometheus.Counter
	TransferDuration  prometheus.Histogram
	TransferErrors    *prometheus.CounterVec

	// Approval metrics
	ApprovalsSubmitted *prometheus.CounterVec
	ApprovalsReviewed  *prometheus.CounterVec
	ApprovalLatency    prometheus.Histogram

	// Account metrics
	AccountsOpened prometheus.Counter

	// Sequence metrics
	SequencesIssued *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Ledger metrics
	ConsistencyChecks *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Teller metrics
		DepositsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ihsancore_deposits_posted_total",
			Help: "Total number of deposits posted",
		}),
		WithdrawalsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ihsancore_withdrawals_posted_total",
			Help: "Total number of withdrawals posted",
		}),
		PostingDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ihsancore_posting_duration_seconds",
			Help:    "Duration of teller posting operations",
			Buckets: prometheus.DefBuckets,
		}),
		PostingAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ihsancore_posting_amount",
			Help:    "Posted amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		PostingErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_posting_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),

		// Transfer metrics
		TransfersExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ihsancore_transfers_executed_total",
			Help: "Total number of transfers executed",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ihsancore_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		// Approval metrics
		ApprovalsSubmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_approvals_submitted_total",
				Help: "Total approval requests submitted by entity type",
			},
			[]string{"entity_type"},
		),
		ApprovalsReviewed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_approvals_reviewed_total",
				Help: "Total approval requests reviewed by entity type and outcome",
			},
			[]string{"entity_type", "outcome"},
		),
		ApprovalLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ihsancore_approval_latency_seconds",
			Help:    "Time between submission and review of approval requests",
			Buckets: []float64{1, 60, 300, 1800, 3600, 14400, 86400},
		}),

		// Account metrics
		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ihsancore_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		// Sequence metrics
		SequencesIssued: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_sequences_issued_total",
				Help: "Total sequence numbers issued by counter name",
			},
			[]string{"counter"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ihsancore_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Ledger metrics
		ConsistencyChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ihsancore_consistency_checks_total",
				Help: "Total ledger consistency checks by result",
			},
			[]string{"result"},
		),
	}
}
