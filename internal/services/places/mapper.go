package places

import "github.com/ravichandan/foodie-service-sub000/internal/mongodb"

func MapDbPlaceToApiPlace(place mongodb.PlaceDb) Place {
	return Place{
		Id:           place.Id,
		Name:         place.Name,
		Aliases:      place.Aliases,
		Address:      place.Address,
		OpeningTimes: place.OpeningTimes,
		Media:        place.Media,
		FriendlyTags: place.FriendlyTags,
	}
}
