package ratings

import "github.com/ravichandan/foodie-service-sub000/internal/mongodb"

func MapDbRatingToApiRating(dbRating mongodb.RatingDb) Aggregate {
	return Aggregate{
		Id:               dbRating.Id,
		PlaceId:          dbRating.PlaceId,
		PlaceItemId:      dbRating.PlaceItemId,
		Taste:            dbRating.Taste,
		Presentation:     dbRating.Presentation,
		Service:          dbRating.Service,
		Ambience:         dbRating.Ambience,
		NoOfReviews:      dbRating.NoOfReviews,
		NoOfReviewPhotos: dbRating.NoOfReviewPhotos,
		CreatedAt:        dbRating.CreatedAt,
		ModifiedAt:       dbRating.ModifiedAt,
	}
}
