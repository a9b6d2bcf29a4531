// Package asyncx provides the timing primitives used by the dispatch loop.
//
// The mail transports behind a batch are rate limited and will flag bursts
// of identical messages as spam, so the dispatcher waits between sends. The
// wait is expressed as a [Pacer] rather than an inline sleep, which keeps the
// policy configurable and lets tests run without delays.
//
// # Pacers
//
// [FixedDelay] waits a constant duration before every send except the first.
// This is the default policy and matches the behavior operators expect from
// a desktop mail client.
//
//	p := asyncx.FixedDelay(5 * time.Second)
//
// [TokenBucket] allows short bursts while holding a long-run rate. It is
// backed by golang.org/x/time/rate.
//
//	p := asyncx.TokenBucket(12, 1) // 12 messages per minute, no burst
//
// [NoDelay] never waits.
//
// Every pacer honours context cancellation: Wait returns ctx.Err() as soon
// as the context is done.
//
// # Sleep
//
// [Sleep] is the context-aware sleep the pacers are built on.
package asyncx
