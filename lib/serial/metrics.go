package serial

import "github.com/VictoriaMetrics/metrics"

// --------------------------------------------------------------------------
// Operation Counters
// --------------------------------------------------------------------------

// Counters for the member-level codec. They are registered in the default
// metrics set and can be exposed with metrics.WritePrometheus.
var (
	encodeMembers   = metrics.NewCounter(`serial_member_encodes_total`)
	decodeMembers   = metrics.NewCounter(`serial_member_decodes_total`)
	tagMismatches   = metrics.NewCounter(`serial_member_tag_mismatches_total`)
	droppedElements = metrics.NewCounter(`serial_sequence_dropped_elements_total`)
)
