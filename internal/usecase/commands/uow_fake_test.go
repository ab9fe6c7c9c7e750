//go:build unit

package commands

import (
	"context"
	"maps"
	"time"

	"groundio/internal/domain/booking"
	"groundio/internal/domain/review"
	"groundio/internal/domain/slot"
	"groundio/internal/domain/user"
	"groundio/internal/domain/venue"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"
	"groundio/internal/pkg/pgconv"
	"groundio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type outboxJob struct {
	Kind    string
	Topic   string
	Payload []byte
}

// memUnitOfWork keeps rows in maps and restores them when the transaction body fails.
type memUnitOfWork struct {
	venues        map[uuid.UUID]query.VenueRow
	users         map[uuid.UUID]query.UserRow
	bookings      map[uuid.UUID]query.BookingRow
	idempotency   map[idemKey]shared.IdempotencyRecord
	reviews       map[uuid.UUID]uuid.UUID
	jobs          []outboxJob
	ratingUpdates []uuid.UUID
	lastLogins    map[uuid.UUID]time.Time
	// calls records transactional venue locks and review writes in order.
	calls []string

	// beforeBookingInsert runs ahead of the live-slot check to simulate a concurrent writer.
	beforeBookingInsert func(m *memUnitOfWork, b *booking.Booking)
	commits             int
}

func newMemUnitOfWork() *memUnitOfWork {
	return &memUnitOfWork{
		venues:      map[uuid.UUID]query.VenueRow{},
		users:       map[uuid.UUID]query.UserRow{},
		bookings:    map[uuid.UUID]query.BookingRow{},
		idempotency: map[idemKey]shared.IdempotencyRecord{},
		reviews:     map[uuid.UUID]uuid.UUID{},
		lastLogins:  map[uuid.UUID]time.Time{},
	}
}

func (m *memUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	venues, users, bookings := maps.Clone(m.venues), maps.Clone(m.users), maps.Clone(m.bookings)
	idem, reviews := maps.Clone(m.idempotency), maps.Clone(m.reviews)
	jobs, ratings := len(m.jobs), len(m.ratingUpdates)
	m.calls = nil

	if err := fn(ctx, &memTx{m: m}); err != nil {
		m.venues, m.users, m.bookings = venues, users, bookings
		m.idempotency, m.reviews = idem, reviews
		m.jobs, m.ratingUpdates = m.jobs[:jobs], m.ratingUpdates[:ratings]
		return err
	}
	m.commits++
	return nil
}

func (m *memUnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memUnitOfWork) CommandReads() shared.CommandReads { return memReads{m: m} }

func (m *memUnitOfWork) putVenue(v *venue.Venue) {
	row, err := converter.VenueToRow(v)
	if err != nil {
		panic(err)
	}
	m.venues[v.ID()] = row
}

func (m *memUnitOfWork) putUser(u *user.User) { m.users[u.ID()] = converter.UserToRow(u) }

func (m *memUnitOfWork) putBooking(b *booking.Booking) {
	m.bookings[b.ID()] = converter.BookingToRow(b)
}

func (m *memUnitOfWork) bookingStatus(id uuid.UUID) string { return m.bookings[id].Status }

type memTx struct {
	m *memUnitOfWork
}

func (t *memTx) Venues() shared.VenueRepository               { return memVenues{m: t.m} }
func (t *memTx) Bookings() shared.BookingRepository           { return memBookings{m: t.m} }
func (t *memTx) Reviews() shared.ReviewRepository             { return memReviews{m: t.m} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return memIdempotency{m: t.m} }
func (t *memTx) Notifications() shared.NotificationRepository { return memOutbox{m: t.m} }
func (t *memTx) Users() shared.UserRepository                 { return memUsers{m: t.m} }
func (t *memTx) Reads() shared.CommandReads                   { return memReads{m: t.m, locking: true} }
func (t *memTx) DB() db.DBTX                                  { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func uniqueViolation(constraint string) error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: pgconv.CodeUniqueViolation, ConstraintName: constraint})
}

type memReads struct {
	m       *memUnitOfWork
	locking bool
}

func (r memReads) VenueByID(_ context.Context, id uuid.UUID) (*venue.Venue, error) {
	if r.locking {
		r.m.calls = append(r.m.calls, "lock venue")
	}
	row, ok := r.m.venues[id]
	if !ok {
		return nil, notFound("venue")
	}
	return converter.VenueFromRow(row)
}

func (r memReads) HeldSlots(_ context.Context, venueID uuid.UUID, date booking.Date) ([]slot.Label, error) {
	var out []slot.Label
	for _, row := range r.m.bookings {
		if holds(row, venueID, date) {
			out = append(out, slot.Label(row.TimeSlot))
		}
	}
	return out, nil
}

func (r memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.m.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return converter.BookingFromRow(row)
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	row, ok := r.m.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return converter.UserFromRow(row)
}

func (r memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.m.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r memReads) ReviewExistsForBooking(_ context.Context, bookingID uuid.UUID) (bool, error) {
	_, ok := r.m.reviews[bookingID]
	return ok, nil
}

func holds(row query.BookingRow, venueID uuid.UUID, date booking.Date) bool {
	status, err := booking.NewStatus(row.Status)
	if err != nil || !status.HoldsSlot() {
		return false
	}
	return row.VenueID.Valid && uuid.UUID(row.VenueID.Bytes) == venueID &&
		booking.DateOf(pgconv.DateFromPgtype(row.BookingDate)).String() == date.String()
}

type memVenues struct {
	m *memUnitOfWork
}

func (r memVenues) Create(_ context.Context, _ db.DBTX, v *venue.Venue) error {
	r.m.putVenue(v)
	return nil
}

func (r memVenues) Update(_ context.Context, _ db.DBTX, v *venue.Venue) error {
	if _, ok := r.m.venues[v.ID()]; !ok {
		return notFound("venue")
	}
	r.m.putVenue(v)
	return nil
}

func (r memVenues) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.m.venues[id]; !ok {
		return notFound("venue")
	}
	delete(r.m.venues, id)
	return nil
}

func (r memVenues) RecalculateRating(_ context.Context, _ db.DBTX, venueID uuid.UUID) error {
	r.m.calls = append(r.m.calls, "recalculate rating")
	r.m.ratingUpdates = append(r.m.ratingUpdates, venueID)
	return nil
}

type memBookings struct {
	m *memUnitOfWork
}

func (r memBookings) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	if r.m.beforeBookingInsert != nil {
		r.m.beforeBookingInsert(r.m, b)
	}
	for _, row := range r.m.bookings {
		if holds(row, b.Venue().ID, b.Date()) && row.TimeSlot == b.TimeSlot().String() {
			return uniqueViolation("bookings_live_slot_uniq")
		}
	}
	r.m.putBooking(b)
	return nil
}

func (r memBookings) UpdateStatus(_ context.Context, _ db.DBTX, b *booking.Booking, from ...booking.Status) error {
	row, ok := r.m.bookings[b.ID()]
	if !ok {
		return notFound("booking")
	}
	for _, s := range from {
		if row.Status == s.String() {
			row.Status = b.Status().String()
			row.UpdatedAt = b.UpdatedAt()
			r.m.bookings[b.ID()] = row
			return nil
		}
	}
	return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
}

func (r memBookings) CountUpcomingForVenue(_ context.Context, _ db.DBTX, venueID uuid.UUID, from booking.Date) (int64, error) {
	var n int64
	for _, row := range r.m.bookings {
		day := booking.DateOf(pgconv.DateFromPgtype(row.BookingDate))
		if holds(row, venueID, day) && !day.Before(from) {
			n++
		}
	}
	return n, nil
}

type memReviews struct {
	m *memUnitOfWork
}

func (r memReviews) Create(_ context.Context, _ db.DBTX, rev *review.Review) error {
	if _, ok := r.m.reviews[rev.BookingID()]; ok {
		return uniqueViolation("reviews_booking_id_key")
	}
	r.m.reviews[rev.BookingID()] = rev.ID()
	r.m.calls = append(r.m.calls, "insert review")
	return nil
}

type memIdempotency struct {
	m *memUnitOfWork
}

func (r memIdempotency) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	k := idemKey{key, userID}
	if _, ok := r.m.idempotency[k]; ok {
		return infra.WrapRepoErr("idempotency key claimed", nil, infra.KindConflict)
	}
	r.m.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r memIdempotency) Complete(_ context.Context, _ db.DBTX, key, userID, bookingID uuid.UUID) error {
	k := idemKey{key, userID}
	rec, ok := r.m.idempotency[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.ResultBookingID = &bookingID
	r.m.idempotency[k] = rec
	return nil
}

type memOutbox struct {
	m *memUnitOfWork
}

func (r memOutbox) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, _ time.Time) error {
	r.m.jobs = append(r.m.jobs, outboxJob{Kind: kind, Topic: topic, Payload: payload})
	return nil
}

func (r memOutbox) ClaimDue(context.Context, db.DBTX, time.Time, int32) ([]shared.NotificationJob, error) {
	return nil, nil
}

func (r memOutbox) MarkSent(context.Context, db.DBTX, uuid.UUID, time.Time) error { return nil }

func (r memOutbox) MarkFailed(context.Context, db.DBTX, uuid.UUID, string, time.Time, bool) error {
	return nil
}

type memUsers struct {
	m *memUnitOfWork
}

func (r memUsers) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	for _, row := range r.m.users {
		if row.Email == u.Email().Value() {
			return uniqueViolation("users_email_key")
		}
	}
	r.m.putUser(u)
	return nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID, at time.Time) error {
	r.m.lastLogins[userID] = at
	return nil
}

func (r memUsers) UpdateContact(_ context.Context, _ db.DBTX, u *user.User) error {
	if _, ok := r.m.users[u.ID()]; !ok {
		return notFound("user")
	}
	r.m.putUser(u)
	return nil
}

func (r memUsers) UpsertBusinessProfile(_ context.Context, _ db.DBTX, u *user.User) error {
	p := converter.MerchantProfileParams(u)
	row := r.m.users[u.ID()]
	row.BusinessName = pgconv.StringPtrToPgtype(&p.BusinessName)
	row.BusinessAddress = pgconv.StringPtrToPgtype(&p.BusinessAddress)
	row.City = pgconv.StringPtrToPgtype(&p.City)
	row.PAN = pgconv.StringPtrToPgtype(&p.PAN)
	row.GSTIN = p.GSTIN
	row.Aadhaar = p.Aadhaar
	row.VerificationStatus = pgconv.StringPtrToPgtype(&p.VerificationStatus)
	r.m.users[u.ID()] = row
	return nil
}
