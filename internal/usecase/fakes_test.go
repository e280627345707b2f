package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeStore is the shared in-memory state behind the repository fakes.
// Its mutex plays the part of the row lock: FindByIDForUpdate acquires it
// and the transaction's Commit or Rollback releases it, so the concurrency
// semantics match what SELECT ... FOR UPDATE gives the real repository.
type fakeStore struct {
	mu        sync.Mutex
	tours     []*entity.Tour
	dates     []*entity.TourDate
	operators []*entity.TourOperator
	photos    []*entity.TourPhoto
	bookings  []*entity.Booking
	reviews   []*entity.Review
	faqs      []*entity.FAQ
	posts     []*entity.BlogPost
	leads     []*entity.Lead
}

func newFakeRepository(store *fakeStore) *repository.Repository {
	return &repository.Repository{
		Operator:  &fakeOperatorRepo{store},
		Tour:      &fakeTourRepo{store},
		TourPhoto: &fakeTourPhotoRepo{store},
		TourDate:  &fakeTourDateRepo{store},
		Booking:   &fakeBookingRepo{store},
		Review:    &fakeReviewRepo{store},
		FAQ:       &fakeFAQRepo{store},
		BlogPost:  &fakeBlogPostRepo{store},
		Lead:      &fakeLeadRepo{store},
	}
}

// ---------- transaction ----------

type fakeTx struct {
	store  *fakeStore
	locked bool
}

func (tx *fakeTx) acquire() {
	if !tx.locked {
		tx.store.mu.Lock()
		tx.locked = true
	}
}

func (tx *fakeTx) release() {
	if tx.locked {
		tx.store.mu.Unlock()
		tx.locked = false
	}
}

func (tx *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, errors.New("nested tx") }
func (tx *fakeTx) Commit(ctx context.Context) error          { tx.release(); return nil }
func (tx *fakeTx) Rollback(ctx context.Context) error        { tx.release(); return nil }
func (tx *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (tx *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (tx *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (tx *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (tx *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (tx *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (tx *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (tx *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeDB struct {
	store *fakeStore
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return &fakeTx{store: db.store}, nil }
func (db *fakeDB) Ping(ctx context.Context) error            { return nil }
func (db *fakeDB) Close()                                    {}

// ---------- tour operators ----------

type fakeOperatorRepo struct {
	store *fakeStore
}

func (r *fakeOperatorRepo) Create(ctx context.Context, operator *entity.TourOperator) error {
	r.store.operators = append(r.store.operators, operator)
	return nil
}

func (r *fakeOperatorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourOperator, error) {
	for _, op := range r.store.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, nil
}

func (r *fakeOperatorRepo) FindActive(ctx context.Context) ([]*entity.TourOperator, error) {
	var active []*entity.TourOperator
	for _, op := range r.store.operators {
		if op.IsActive {
			active = append(active, op)
		}
	}
	return active, nil
}

func (r *fakeOperatorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for _, tour := range r.store.tours {
		if tour.TourOperatorID == id {
			return repository.ErrReferenced
		}
	}
	for i, op := range r.store.operators {
		if op.ID == id {
			r.store.operators = append(r.store.operators[:i], r.store.operators[i+1:]...)
			return nil
		}
	}
	return errors.New("tour operator not found")
}

// ---------- tours ----------

type fakeTourRepo struct {
	store *fakeStore
}

func (r *fakeTourRepo) Create(ctx context.Context, tour *entity.Tour) error {
	for _, existing := range r.store.tours {
		if existing.Slug == tour.Slug {
			return repository.ErrDuplicate
		}
	}
	r.store.tours = append(r.store.tours, tour)
	return nil
}

func (r *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	for _, tour := range r.store.tours {
		if tour.ID == id {
			return tour, nil
		}
	}
	return nil, nil
}

func (r *fakeTourRepo) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	for _, tour := range r.store.tours {
		if tour.Slug == slug && tour.IsActive {
			return tour, nil
		}
	}
	return nil, nil
}

func (r *fakeTourRepo) FindActive(ctx context.Context, filter repository.TourFilter, limit, offset int) ([]*entity.Tour, error) {
	var active []*entity.Tour
	for _, tour := range r.store.tours {
		if tour.IsActive {
			active = append(active, tour)
		}
	}
	return active, nil
}

func (r *fakeTourRepo) CountActive(ctx context.Context, filter repository.TourFilter) (int64, error) {
	tours, _ := r.FindActive(ctx, filter, 0, 0)
	return int64(len(tours)), nil
}

// ---------- tour photos ----------

type fakeTourPhotoRepo struct {
	store *fakeStore
}

func (r *fakeTourPhotoRepo) Create(ctx context.Context, photo *entity.TourPhoto) error {
	r.store.photos = append(r.store.photos, photo)
	return nil
}

func (r *fakeTourPhotoRepo) FindByTourID(ctx context.Context, tourID uuid.UUID) ([]*entity.TourPhoto, error) {
	var photos []*entity.TourPhoto
	for _, photo := range r.store.photos {
		if photo.TourID == tourID {
			photos = append(photos, photo)
		}
	}
	return photos, nil
}

func (r *fakeTourPhotoRepo) FindCoverByTourID(ctx context.Context, tourID uuid.UUID) (*entity.TourPhoto, error) {
	for _, photo := range r.store.photos {
		if photo.TourID == tourID && photo.IsCover {
			return photo, nil
		}
	}
	return nil, nil
}

// ---------- tour dates ----------

type fakeTourDateRepo struct {
	store *fakeStore
}

func (r *fakeTourDateRepo) Create(ctx context.Context, date *entity.TourDate) error {
	for _, existing := range r.store.dates {
		if existing.TourID == date.TourID && existing.StartDate.Equal(date.StartDate) {
			return repository.ErrDuplicate
		}
	}
	r.store.dates = append(r.store.dates, date)
	return nil
}

func (r *fakeTourDateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourDate, error) {
	for _, date := range r.store.dates {
		if date.ID == id {
			copied := *date
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTourDateRepo) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.TourDate, error) {
	q.(*fakeTx).acquire()
	return r.FindByID(ctx, id)
}

func (r *fakeTourDateRepo) FindUpcomingByTourID(ctx context.Context, tourID uuid.UUID, from time.Time, limit int) ([]*entity.TourDate, error) {
	var upcoming []*entity.TourDate
	for _, date := range r.store.dates {
		if date.TourID == tourID && date.Status == entity.TourDateStatusAvailable && !date.StartDate.Before(from) {
			upcoming = append(upcoming, date)
		}
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming, nil
}

func (r *fakeTourDateRepo) UpdateSeats(ctx context.Context, q database.Querier, date *entity.TourDate) error {
	for _, existing := range r.store.dates {
		if existing.ID == date.ID {
			existing.AvailableSeats = date.AvailableSeats
			existing.Status = date.Status
			return nil
		}
	}
	return errors.New("tour date not found")
}

// ---------- bookings ----------

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	r.store.bookings = append(r.store.bookings, booking)
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range r.store.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return r.store.bookings, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.store.bookings)), nil
}

func (r *fakeBookingRepo) FindByTourDateID(ctx context.Context, tourDateID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range r.store.bookings {
		if b.TourDateID == tourDateID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, b := range r.store.bookings {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

// ---------- reviews ----------

type fakeReviewRepo struct {
	store *fakeStore
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.store.reviews = append(r.store.reviews, review)
	return nil
}

func (r *fakeReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	for _, review := range r.store.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) FindApproved(ctx context.Context, tourID *uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var approved []*entity.Review
	for _, review := range r.store.reviews {
		if review.ModerationStatus != entity.ModerationStatusApproved {
			continue
		}
		if tourID != nil && review.TourID != *tourID {
			continue
		}
		approved = append(approved, review)
	}
	return approved, nil
}

func (r *fakeReviewRepo) FindPending(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	var pending []*entity.Review
	for _, review := range r.store.reviews {
		if review.ModerationStatus == entity.ModerationStatusPending {
			pending = append(pending, review)
		}
	}
	return pending, nil
}

func (r *fakeReviewRepo) CountPending(ctx context.Context) (int64, error) {
	pending, _ := r.FindPending(ctx, 0, 0)
	return int64(len(pending)), nil
}

func (r *fakeReviewRepo) AverageApprovedRating(ctx context.Context, tourID uuid.UUID) (*float64, error) {
	var sum, count int
	for _, review := range r.store.reviews {
		if review.TourID == tourID && review.ModerationStatus == entity.ModerationStatusApproved {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, nil
}

func (r *fakeReviewRepo) UpdateModeration(ctx context.Context, reviewID uuid.UUID, status entity.ModerationStatus) error {
	for _, review := range r.store.reviews {
		if review.ID == reviewID {
			review.ModerationStatus = status
			return nil
		}
	}
	return errors.New("review not found")
}

// ---------- faq ----------

type fakeFAQRepo struct {
	store *fakeStore
}

func (r *fakeFAQRepo) Create(ctx context.Context, faq *entity.FAQ) error {
	r.store.faqs = append(r.store.faqs, faq)
	return nil
}

func (r *fakeFAQRepo) FindActive(ctx context.Context, category *entity.FAQCategory) ([]*entity.FAQ, error) {
	var active []*entity.FAQ
	for _, faq := range r.store.faqs {
		if !faq.IsActive {
			continue
		}
		if category != nil && faq.Category != *category {
			continue
		}
		active = append(active, faq)
	}
	return active, nil
}

// ---------- blog posts ----------

type fakeBlogPostRepo struct {
	store *fakeStore
}

func (r *fakeBlogPostRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	for _, existing := range r.store.posts {
		if existing.Slug == post.Slug {
			return repository.ErrDuplicate
		}
	}
	r.store.posts = append(r.store.posts, post)
	return nil
}

func (r *fakeBlogPostRepo) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	for _, post := range r.store.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogPostRepo) FindPublished(ctx context.Context, limit, offset int) ([]*entity.BlogPost, error) {
	var published []*entity.BlogPost
	for _, post := range r.store.posts {
		if post.IsPublished {
			published = append(published, post)
		}
	}
	return published, nil
}

func (r *fakeBlogPostRepo) CountPublished(ctx context.Context) (int64, error) {
	published, _ := r.FindPublished(ctx, 0, 0)
	return int64(len(published)), nil
}

// ---------- leads ----------

type fakeLeadRepo struct {
	store *fakeStore
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.store.leads = append(r.store.leads, lead)
	return nil
}

func (r *fakeLeadRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Lead, error) {
	return r.store.leads, nil
}

func (r *fakeLeadRepo) UpdateStatus(ctx context.Context, leadID uuid.UUID, status entity.LeadStatus) error {
	for _, lead := range r.store.leads {
		if lead.ID == leadID {
			lead.Status = status
			return nil
		}
	}
	return errors.New("lead not found")
}
