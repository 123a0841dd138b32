// Package event merges terminal input, a periodic tick and a cancellation
// signal into one ordered stream for a single consumer.
//
// # Architecture
//
//	terminal ──PollEvent──▶ reader goroutine ──┐
//	                                           ▼
//	ticker ───────────────────────▶ producer goroutine ──▶ bounded queue ──▶ Next
//	                                           ▲
//	Cancel / ctx.Done ─────────────────────────┘
//
// The producer checks for cancellation before every wait and while
// blocked on a full queue, so a cancelled multiplexer stops without
// delivering anything else. Only key presses are forwarded; mouse, resize,
// focus and paste events and key releases are dropped.
//
// Input read failures stop the producer without escalating. The failure
// is available from Err once Done is closed.
//
// # Usage
//
//	mux := event.New(term, event.WithTickInterval(2*time.Second))
//	mux.Start(ctx)
//	defer mux.Cancel()
//
//	for {
//		ev, err := mux.Next(ctx)
//		if err != nil {
//			break
//		}
//		switch ev.Type {
//		case event.TypeKey:
//			// ...
//		case event.TypeTick:
//			// ...
//		}
//	}
package event
