package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Operator  OperatorRepository
	Tour      TourRepository
	TourPhoto TourPhotoRepository
	TourDate  TourDateRepository
	Booking   BookingRepository
	Review    ReviewRepository
	FAQ       FAQRepository
	BlogPost  BlogPostRepository
	Lead      LeadRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Operator:  NewOperatorRepository(db, log),
		Tour:      NewTourRepository(db, log),
		TourPhoto: NewTourPhotoRepository(db, log),
		TourDate:  NewTourDateRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Review:    NewReviewRepository(db, log),
		FAQ:       NewFAQRepository(db, log),
		BlogPost:  NewBlogPostRepository(db, log),
		Lead:      NewLeadRepository(db, log),
	}
}
