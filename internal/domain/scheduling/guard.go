package scheduling

import (
	"context"
	"sync"
	"time"
)

// DefaultReservationTTL bounds how long a reservation may be held before a
// competing reserver is allowed to revoke it.
const DefaultReservationTTL = 30 * time.Second

// Reservation is exclusive access to one resource's scheduling window,
// handed out by Guard.Reserve and consumed by Commit or Release.
type Reservation struct {
	resourceID string
	interval   Interval
	deadline   time.Time
	revoked    bool // guarded by Guard.mu
}

type gate struct {
	holder   *Reservation
	released chan struct{} // closed when holder releases, buffered per generation
}

// Guard serializes the check-then-insert window per resource so two
// concurrent creates cannot both pass the overlap check and both write.
// Reservations on different resources never contend.
//
// Reserve blocks while another reservation is active for the same resource;
// waiters are re-admitted when the holder releases or its TTL lapses. A
// holder that outlives the TTL is revoked by the next reserver and its
// Commit fails with ErrReservationExpired.
type Guard struct {
	store AppointmentRepository
	ttl   time.Duration

	mu    sync.Mutex
	gates map[string]*gate
	now   func() time.Time
}

// NewGuard returns a Guard checking overlaps against store. A non-positive
// ttl falls back to DefaultReservationTTL.
func NewGuard(store AppointmentRepository, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	return &Guard{
		store: store,
		ttl:   ttl,
		gates: make(map[string]*gate),
		now:   time.Now,
	}
}

// Reserve acquires the resource's scheduling window and verifies no
// scheduled appointment overlaps the interval. It blocks while another
// reservation is active, honoring ctx cancellation. Returns ErrConflict
// when an overlapping appointment already exists.
func (g *Guard) Reserve(ctx context.Context, resourceID string, iv Interval) (*Reservation, error) {
	for {
		g.mu.Lock()
		gt, ok := g.gates[resourceID]
		if !ok {
			gt = &gate{released: make(chan struct{})}
			g.gates[resourceID] = gt
		}

		if gt.holder == nil || g.now().After(gt.holder.deadline) {
			if gt.holder != nil {
				// Revoke the expired holder and wake its waiters;
				// the holder's Commit will fail.
				gt.holder.revoked = true
				close(gt.released)
			}
			res := &Reservation{
				resourceID: resourceID,
				interval:   iv,
				deadline:   g.now().Add(g.ttl),
			}
			gt.holder = res
			gt.released = make(chan struct{})
			g.mu.Unlock()

			existing, err := g.store.ListByRange(ctx, resourceID, iv.Start, iv.End)
			if err != nil {
				g.Release(res)
				return nil, err
			}
			if len(existing) > 0 {
				g.Release(res)
				return nil, ErrConflict
			}
			return res, nil
		}

		wait := gt.released
		expiresIn := gt.holder.deadline.Sub(g.now())
		g.mu.Unlock()

		timer := time.NewTimer(expiresIn)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-wait:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Commit runs fn (typically the store insert) inside the reservation window
// and then releases it. If the reservation was revoked after outliving its
// TTL, fn is not run and ErrReservationExpired is returned.
func (g *Guard) Commit(res *Reservation, fn func() error) error {
	g.mu.Lock()
	gt := g.gates[res.resourceID]
	expired := res.revoked || gt == nil || gt.holder != res || g.now().After(res.deadline)
	g.mu.Unlock()

	if expired {
		g.Release(res)
		return ErrReservationExpired
	}

	err := fn()
	g.Release(res)
	return err
}

// Release aborts the reservation and wakes waiters. It is idempotent and
// safe to call after Commit.
func (g *Guard) Release(res *Reservation) {
	if res == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	res.revoked = true
	gt := g.gates[res.resourceID]
	if gt != nil && gt.holder == res {
		gt.holder = nil
		close(gt.released)
	}
}
