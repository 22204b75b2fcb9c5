package internaldefs

import (
	adminauth "github.com/maxwellflitton/adminauth"
)

// CounterDef binds one engine counter to its exported metric name.
type CounterDef struct {
	ID   adminauth.MetricID
	Name string
	Help string
}

// HistogramDef binds one engine histogram to its exported metric name.
type HistogramDef struct {
	ID   adminauth.MetricID
	Name string
	Help string
}

// CounterDefs lists every engine counter in a stable export order.
var CounterDefs = []CounterDef{
	{ID: adminauth.MetricLoginSuccess, Name: "adminauth_login_success_total", Help: "Successful login attempts."},
	{ID: adminauth.MetricLoginFailure, Name: "adminauth_login_failure_total", Help: "Failed login attempts."},
	{ID: adminauth.MetricRefreshSuccess, Name: "adminauth_refresh_success_total", Help: "Successful token refresh operations."},
	{ID: adminauth.MetricRefreshFailure, Name: "adminauth_refresh_failure_total", Help: "Failed token refresh operations."},
	{ID: adminauth.MetricLogout, Name: "adminauth_logout_total", Help: "Logout operations."},
	{ID: adminauth.MetricValidateSuccess, Name: "adminauth_validate_success_total", Help: "Token validations that admitted the request."},
	{ID: adminauth.MetricValidateRejected, Name: "adminauth_validate_rejected_total", Help: "Token validations that rejected the request."},
	{ID: adminauth.MetricSessionCreated, Name: "adminauth_session_created_total", Help: "Created sessions."},
	{ID: adminauth.MetricSessionRevoked, Name: "adminauth_session_revoked_total", Help: "Revoked sessions."},
	{ID: adminauth.MetricRateLimitHit, Name: "adminauth_rate_limit_hit_total", Help: "Email sends denied by the rate limiter."},
	{ID: adminauth.MetricEmailSent, Name: "adminauth_email_sent_total", Help: "Account emails dispatched."},
}

// HistogramDefs lists every engine histogram in a stable export order.
var HistogramDefs = []HistogramDef{
	{ID: adminauth.MetricValidateLatency, Name: "adminauth_validate_latency_seconds", Help: "Validate latency histogram."},
}

// HistogramBounds holds the upper bucket bounds in seconds, as rendered by
// the Prometheus exporter.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix holds the bucket bounds as metric name suffixes for
// exporters that cannot carry a le label.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// Prometheus histograms expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
