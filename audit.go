package adminauth

import (
	"io"

	"github.com/maxwellflitton/adminauth/internal/audit"
)

// AuditEvent is the record emitted for each engine operation.
type AuditEvent = audit.Event

// AuditSink receives emitted audit events.
type AuditSink = audit.Sink

// Audit event types.
const (
	AuditLogin     = audit.EventLogin
	AuditLogout    = audit.EventLogout
	AuditRefresh   = audit.EventRefresh
	AuditValidate  = audit.EventValidate
	AuditEmailSend = audit.EventEmailSend
)

// NewChannelAuditSink returns a sink that buffers events on a channel.
func NewChannelAuditSink(buffer int) *audit.ChannelSink {
	return audit.NewChannelSink(buffer)
}

// NewJSONAuditSink returns a sink that writes one JSON event per line.
func NewJSONAuditSink(w io.Writer) *audit.JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}
