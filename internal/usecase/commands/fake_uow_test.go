//go:build unit

package commands_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/infra"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// memState is the committed world. Every transaction works on a clone and swaps it in on success.
type memState struct {
	reservations map[uuid.UUID]*hotelreservation.Reservation
	orders       map[uuid.UUID]*order.Order
	lineItems    map[uuid.UUID]*order.LineItem // keyed by reservation id
	events       map[uuid.UUID]hotelreservation.EventSpec
	venues       map[uuid.UUID]hotelreservation.EventVenueSpec
	rates        map[uuid.UUID]quote.Linkage
	history      []history.Entry
	touched      []uuid.UUID
	jobs         []string
	// window edge observed at each line-item write
	windowAtUpdate []time.Time
}

func newMemState() *memState {
	return &memState{
		reservations: map[uuid.UUID]*hotelreservation.Reservation{},
		orders:       map[uuid.UUID]*order.Order{},
		lineItems:    map[uuid.UUID]*order.LineItem{},
		events:       map[uuid.UUID]hotelreservation.EventSpec{},
		venues:       map[uuid.UUID]hotelreservation.EventVenueSpec{},
		rates:        map[uuid.UUID]quote.Linkage{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for k, v := range s.reservations {
		c.reservations[k] = cloneReservation(v, v.HotelReservationCode(), v.UpdatedAt())
	}
	for k, v := range s.orders {
		c.orders[k] = order.ReconstructOrder(v.ID(), v.PlacedAt(), v.QuickCancellationExpireAt())
	}
	for k, v := range s.lineItems {
		c.lineItems[k] = order.ReconstructLineItem(v.ID(), v.OrderID(), v.OrderableID(), v.Qty())
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.venues {
		c.venues[k] = v
	}
	for k, v := range s.rates {
		c.rates[k] = v
	}
	c.history = append([]history.Entry(nil), s.history...)
	c.touched = append([]uuid.UUID(nil), s.touched...)
	c.jobs = append([]string(nil), s.jobs...)
	c.windowAtUpdate = append([]time.Time(nil), s.windowAtUpdate...)
	return c
}

func cloneReservation(r *hotelreservation.Reservation, code *string, updatedAt time.Time) *hotelreservation.Reservation {
	return hotelreservation.ReconstructReservation(
		r.ID(), r.Variant(), r.HotelID(), r.EventID(), r.EventVenueID(), r.HotelQuoteRateID(),
		r.TeamID(), r.IndividualID(), r.OrderID(), r.PeopleCount(), r.BlockExpiresAt(), code,
		r.CreatedAt(), updatedAt,
	)
}

func (s *memState) sortedReservations() []*hotelreservation.Reservation {
	out := make([]*hotelreservation.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID().String() < out[j].ID().String()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out
}

type faults struct {
	appendErr error
	assignErr error
	touchErr  error
	// UpdateLineItemQty fails once this many writes succeeded; negative disables
	lineUpdatesBeforeFailure int
	lineUpdateErr            error
	// runs after LockByID acquired the order lock
	afterLock func(orderID uuid.UUID)
}

// fakeUoW commits by replacing the whole state. Only transactions that lock the same
// order through LockByID may run in parallel.
type fakeUoW struct {
	mu         sync.Mutex // guards state and commits
	state      *memState
	faults     faults
	commits    int
	orderLocks sync.Map // order id -> *sync.Mutex, held until the transaction ends
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		state:  newMemState(),
		faults: faults{lineUpdatesBeforeFailure: -1},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	tx := &fakeTx{uow: u, state: u.state.clone()}
	u.mu.Unlock()

	defer tx.releaseLocks()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.mu.Lock()
	u.state = tx.state
	u.commits++
	u.mu.Unlock()
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fakeReads{state: u.state.clone()}
}

// snapshot returns a copy of the committed state.
func (u *fakeUoW) snapshot() *memState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.clone()
}

func (u *fakeUoW) seed(fn func(s *memState)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u.state)
}

type fakeTx struct {
	uow   *fakeUoW
	state *memState
	held  []*sync.Mutex
}

// lockOrder blocks like SELECT ... FOR UPDATE, then rereads the committed state.
// Writes made earlier in the transaction are dropped, so lock first.
func (t *fakeTx) lockOrder(id uuid.UUID) {
	m, _ := t.uow.orderLocks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	t.held = append(t.held, mu)

	t.uow.mu.Lock()
	t.state = t.uow.state.clone()
	t.uow.mu.Unlock()
}

func (t *fakeTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *fakeTx) HotelReservations() shared.HotelReservationRepository { return fakeReservations{tx: t} }
func (t *fakeTx) History() shared.HistoryRepository                    { return fakeHistory{tx: t} }
func (t *fakeTx) Orders() shared.OrderRepository                       { return &fakeOrders{tx: t} }
func (t *fakeTx) Quotes() shared.QuoteRepository                       { return fakeQuotes{tx: t} }
func (t *fakeTx) Notifications() shared.NotificationRepository         { return fakeNotifications{tx: t} }
func (t *fakeTx) Reads() shared.CommandReads                           { return fakeReads{state: t.state} }
func (t *fakeTx) DB() sqlc.DBTX                                        { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReads struct {
	state *memState
}

func (r fakeReads) EventByID(_ context.Context, id uuid.UUID) (*hotelreservation.EventSpec, error) {
	e, ok := r.state.events[id]
	if !ok {
		return nil, notFound("event not found")
	}
	return &e, nil
}

func (r fakeReads) EventVenueByID(_ context.Context, id uuid.UUID) (*hotelreservation.EventVenueSpec, error) {
	v, ok := r.state.venues[id]
	if !ok {
		return nil, notFound("event venue not found")
	}
	return &v, nil
}

func (r fakeReads) QuoteRateByID(_ context.Context, rateID uuid.UUID) (*quote.Linkage, error) {
	l, ok := r.state.rates[rateID]
	if !ok {
		return nil, notFound("hotel quote rate not found")
	}
	return &l, nil
}

type fakeReservations struct {
	tx *fakeTx
}

func saveEffects(r *hotelreservation.Reservation, at time.Time) shared.Effects {
	eff := shared.Effects{Audit: []history.Entry{history.NewEntry(history.ActionSave, r, at)}}
	eff.AddTouch(r.HotelQuoteRateID())
	return eff
}

func (f fakeReservations) Create(_ context.Context, _ sqlc.DBTX, r *hotelreservation.Reservation) (*hotelreservation.Reservation, shared.Effects, error) {
	f.tx.state.reservations[r.ID()] = r
	return r, saveEffects(r, r.CreatedAt()), nil
}

func (f fakeReservations) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*hotelreservation.Reservation, error) {
	r, ok := f.tx.state.reservations[id]
	if !ok {
		return nil, notFound("hotel reservation not found")
	}
	return r, nil
}

func (f fakeReservations) Update(_ context.Context, _ sqlc.DBTX, r *hotelreservation.Reservation) (*hotelreservation.Reservation, shared.Effects, error) {
	stored, ok := f.tx.state.reservations[r.ID()]
	if !ok {
		return nil, shared.Effects{}, notFound("hotel reservation not found")
	}
	// the update statement never writes block_expires_at or the code
	updated := hotelreservation.ReconstructReservation(
		r.ID(), stored.Variant(), stored.HotelID(), stored.EventID(), stored.EventVenueID(), stored.HotelQuoteRateID(),
		r.TeamID(), r.IndividualID(), r.OrderID(), r.PeopleCount(), stored.BlockExpiresAt(), stored.HotelReservationCode(),
		stored.CreatedAt(), r.UpdatedAt(),
	)
	f.tx.state.reservations[r.ID()] = updated
	return updated, saveEffects(updated, updated.UpdatedAt()), nil
}

func (f fakeReservations) Delete(_ context.Context, _ sqlc.DBTX, r *hotelreservation.Reservation, now time.Time) (shared.Effects, error) {
	if err := r.EnsureDestroyable(); err != nil {
		return shared.Effects{}, err
	}
	delete(f.tx.state.reservations, r.ID())
	eff := shared.Effects{Audit: []history.Entry{history.NewEntry(history.ActionDestroy, r, now)}}
	eff.AddTouch(r.HotelQuoteRateID())
	return eff, nil
}

func (f fakeReservations) AssignCode(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, code string, now time.Time) ([]*hotelreservation.Reservation, shared.Effects, error) {
	if f.tx.uow.faults.assignErr != nil {
		return nil, shared.Effects{}, f.tx.uow.faults.assignErr
	}
	var (
		out     []*hotelreservation.Reservation
		effects shared.Effects
	)
	for _, r := range f.tx.state.sortedReservations() {
		if r.OrderID() == nil || *r.OrderID() != orderID || r.HotelReservationCode() != nil {
			continue
		}
		c := code
		stamped := cloneReservation(r, &c, now)
		f.tx.state.reservations[r.ID()] = stamped
		out = append(out, stamped)
		effects.Merge(saveEffects(stamped, now))
	}
	return out, effects, nil
}

func (f fakeReservations) ListByOrder(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) ([]*hotelreservation.Reservation, error) {
	var out []*hotelreservation.Reservation
	for _, r := range f.tx.state.sortedReservations() {
		if r.OrderID() != nil && *r.OrderID() == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeHistory struct {
	tx *fakeTx
}

func (f fakeHistory) Append(_ context.Context, _ sqlc.DBTX, entries []history.Entry) error {
	if f.tx.uow.faults.appendErr != nil {
		return f.tx.uow.faults.appendErr
	}
	f.tx.state.history = append(f.tx.state.history, entries...)
	return nil
}

type fakeOrders struct {
	tx *fakeTx
}

func (f *fakeOrders) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	o, ok := f.tx.state.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return o, nil
}

func (f *fakeOrders) LockByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	f.tx.lockOrder(id)
	if hook := f.tx.uow.faults.afterLock; hook != nil {
		hook(id)
	}
	return f.FindByID(ctx, db, id)
}

func (f *fakeOrders) SetQuickCancellationExpireAt(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) error {
	o, ok := f.tx.state.orders[id]
	if !ok {
		return notFound("order not found")
	}
	edge := at
	f.tx.state.orders[id] = order.ReconstructOrder(o.ID(), o.PlacedAt(), &edge)
	return nil
}

func (f *fakeOrders) LineItemForReservation(_ context.Context, _ sqlc.DBTX, orderID, reservationID uuid.UUID) (*order.LineItem, error) {
	li, ok := f.tx.state.lineItems[reservationID]
	if !ok || li.OrderID() != orderID {
		return nil, notFound("line item not found")
	}
	return order.ReconstructLineItem(li.ID(), li.OrderID(), li.OrderableID(), li.Qty()), nil
}

func (f *fakeOrders) UpdateLineItemQty(_ context.Context, _ sqlc.DBTX, li *order.LineItem) error {
	flt := &f.tx.uow.faults
	if flt.lineUpdatesBeforeFailure == 0 {
		return flt.lineUpdateErr
	}
	if flt.lineUpdatesBeforeFailure > 0 {
		flt.lineUpdatesBeforeFailure--
	}
	f.tx.state.lineItems[li.OrderableID()] = li
	if o, ok := f.tx.state.orders[li.OrderID()]; ok && o.QuickCancellationExpireAt() != nil {
		f.tx.state.windowAtUpdate = append(f.tx.state.windowAtUpdate, *o.QuickCancellationExpireAt())
	}
	return nil
}

type fakeQuotes struct {
	tx *fakeTx
}

func (f fakeQuotes) TouchForRate(_ context.Context, _ sqlc.DBTX, rateID uuid.UUID) (int64, error) {
	if f.tx.uow.faults.touchErr != nil {
		return 0, f.tx.uow.faults.touchErr
	}
	f.tx.state.touched = append(f.tx.state.touched, rateID)
	return 1, nil
}

type fakeNotifications struct {
	tx *fakeTx
}

func (f fakeNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, _ []byte, _ time.Time) error {
	f.tx.state.jobs = append(f.tx.state.jobs, kind+":"+topic)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	codes []string
}

func (n *fakeNotifier) ScheduleConfirmationCode(_ context.Context, code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code)
}

func (n *fakeNotifier) scheduled() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.codes...)
}

type fakeMetrics struct {
	mu         sync.Mutex
	operations map[string]int
	touchFails int
	codes      int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{operations: map[string]int{}}
}

func (m *fakeMetrics) ObserveOperation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := operation + ":ok"
	if err != nil {
		key = operation + ":error"
	}
	m.operations[key]++
}

func (m *fakeMetrics) ObserveTouch(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.touchFails++
	}
}

func (m *fakeMetrics) AddCodesAssigned(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes += n
}
