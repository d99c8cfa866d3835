package items

import "github.com/ravichandan/foodie-service-sub000/internal/mongodb"

func MapDbItemToApiItem(item mongodb.ItemDb) Item {
	return Item{
		Id:       item.Id,
		Name:     item.Name,
		Aliases:  item.Aliases,
		Cuisines: item.Cuisines,
		Course:   item.Course,
		Dietary:  item.Dietary,
		Media:    item.Media,
	}
}
