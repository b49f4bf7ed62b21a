// Package events publishes reconciliation outcomes to Kafka.
//
// One CollectionEvent is emitted per reconciled collection, keyed by the
// collection name. When publishing is disabled New returns a NopPublisher,
// so callers never branch on configuration.
//
// # Usage
//
//	pub := events.New(cfg.Kafka, logger)
//	defer pub.Close()
//	pub.Publish(ctx, &events.CollectionEvent{EventType: events.EventCollectionCreated, Collection: "Burgs"})
package events
