package adminauth

import "github.com/maxwellflitton/adminauth/internal/metrics"

// MetricID indexes one engine counter.
type MetricID = metrics.ID

// MetricsSnapshot is a point-in-time copy of every counter.
type MetricsSnapshot = metrics.Snapshot

// Counters recorded by the engine when metrics are enabled.
const (
	MetricLoginSuccess     = metrics.LoginSuccess
	MetricLoginFailure     = metrics.LoginFailure
	MetricRefreshSuccess   = metrics.RefreshSuccess
	MetricRefreshFailure   = metrics.RefreshFailure
	MetricLogout           = metrics.Logout
	MetricValidateSuccess  = metrics.ValidateSuccess
	MetricValidateRejected = metrics.ValidateRejected
	MetricSessionCreated   = metrics.SessionCreated
	MetricSessionRevoked   = metrics.SessionRevoked
	MetricRateLimitHit     = metrics.RateLimitHit
	MetricEmailSent        = metrics.EmailSent
	MetricValidateLatency  = metrics.ValidateLatency
)
