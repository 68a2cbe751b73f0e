package websocket

// Envelope is the wire format pushed to connected clients.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Message types understood by the frontend.
const (
	TypeNewFaultReport     = "new_fault_report"
	TypeFaultReportUpdated = "fault_report_updated"
)
