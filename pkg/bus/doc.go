// Package bus provides the in-memory event bus the localization engine
// announces its changes on.
//
// Dispatch is synchronous: Publish calls every subscriber of the topic
// before returning, which guarantees that a subscriber registered before
// a locale switch observes every event of that switch. Applications that
// need cross-process notifications can inject their own implementation
// of the engine's Bus interface instead.
//
//	b := bus.NewMemory()
//
//	id := b.Subscribe("locale-changed", func(payload any) {
//		// react to the change
//	})
//	defer b.Unsubscribe(id)
//
//	b.Publish("locale-changed", payload)
package bus
