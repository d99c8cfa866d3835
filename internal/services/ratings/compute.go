package ratings

import (
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

// Snapshot holds the recomputed numeric fields of an aggregate.
type Snapshot struct {
	Taste            *float64
	Presentation     *float64
	Service          *float64
	Ambience         *float64
	NoOfReviews      int
	NoOfReviewPhotos int
}

// ComputeSnapshot recomputes an aggregate from scratch over the reviews in
// the trailing window. Reviews created before `since` never contribute, so
// stale contributions age out on the next recompute. A review missing a
// sub-rating does not contribute to that field's average but still counts
// toward NoOfReviews.
//
// Returns ok=false when no review contributes; the caller must then leave
// the stored aggregate untouched, since an aggregate should reflect only
// demonstrated recent activity.
//
// Place-level snapshots never populate taste/presentation: those are
// food-level signals and only exist on item-scoped aggregates.
func ComputeSnapshot(reviews []mongodb.ReviewDb, since time.Time, itemScoped bool) (Snapshot, bool) {
	var snap Snapshot

	var tasteSum, presentationSum, serviceSum, ambienceSum float64
	var tasteN, presentationN, serviceN, ambienceN int

	for _, review := range reviews {
		if review.CreatedAt.Before(since) {
			continue
		}

		snap.NoOfReviews++
		snap.NoOfReviewPhotos += len(review.Media)

		if itemScoped {
			if review.Taste != nil {
				tasteSum += *review.Taste
				tasteN++
			}
			if review.Presentation != nil {
				presentationSum += *review.Presentation
				presentationN++
			}
		}
		if review.Service != nil {
			serviceSum += *review.Service
			serviceN++
		}
		if review.Ambience != nil {
			ambienceSum += *review.Ambience
			ambienceN++
		}
	}

	if snap.NoOfReviews == 0 {
		return Snapshot{}, false
	}

	if tasteN > 0 {
		avg := tasteSum / float64(tasteN)
		snap.Taste = &avg
	}
	if presentationN > 0 {
		avg := presentationSum / float64(presentationN)
		snap.Presentation = &avg
	}
	if serviceN > 0 {
		avg := serviceSum / float64(serviceN)
		snap.Service = &avg
	}
	if ambienceN > 0 {
		avg := ambienceSum / float64(ambienceN)
		snap.Ambience = &avg
	}

	return snap, true
}
