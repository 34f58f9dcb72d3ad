// Package tcbox provides a minimal, double-buffered terminal cell grid
// with raw-mode keyboard input and resize notification.
//
// It follows the termbox model: the caller writes cells into a back
// buffer, then calls Present to diff that buffer against what was last
// drawn and emit only the bytes needed to bring the terminal up to
// date.
//
// # Basic usage
//
//	if err := tcbox.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer tcbox.Shutdown()
//
//	tcbox.ChangeCell(0, 0, 'x', tcbox.ColorWhite, tcbox.ColorBlack)
//	tcbox.Present()
//
//	for {
//	    ev, err := tcbox.Poll()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if ev.Type == tcbox.EventKey && ev.Key == tcbox.KeyCtrlC {
//	        break
//	    }
//	}
//
// # Process-wide state
//
// tcbox is a singleton: Init may be called once per process at a time,
// and every package-level function operates on the state it
// established until Shutdown is called. This mirrors the reference
// implementation's use of global statics for the selected terminal's
// capability tables and renderer caches.
//
// # Concurrency
//
// The scheduling model is single-threaded and cooperative: Poll and
// Peek run the read/decode/select loop synchronously on the calling
// goroutine rather than in a background reader. Calling any tcbox
// function concurrently from multiple goroutines is safe but
// serialized; it does not parallelize event delivery.
package tcbox
