package store

import "github.com/VictoriaMetrics/metrics"

// membersCreated counts lazily created member slots across all stores.
var membersCreated = metrics.NewCounter(`serial_store_members_created_total`)
