package places

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/food-finder/api-go/types"
)

// Phrase banks for generated review text, selected by rating band.
var positivePhrases = []string{
	"Great food and service!",
	"Excellent experience, highly recommend.",
	"Amazing atmosphere and delicious food.",
	"Best place I've been to in a while.",
	"Friendly staff and quick service.",
	"Fresh ingredients and great taste.",
	"Cozy atmosphere, perfect for dining.",
	"Outstanding quality and reasonable prices.",
}

var neutralPhrases = []string{
	"Decent food, nothing special.",
	"Average experience overall.",
	"Food was okay, service was fine.",
	"Not bad, but not amazing either.",
	"Standard fare, meets expectations.",
	"Reasonable prices for the quality.",
	"Typical restaurant experience.",
}

var negativePhrases = []string{
	"Disappointing food quality.",
	"Service was slow and unfriendly.",
	"Overpriced for what you get.",
	"Food was cold and tasteless.",
	"Would not recommend this place.",
	"Poor hygiene standards.",
	"Terrible experience overall.",
}

// generateReviews produces a synthetic review set for a place: 5 to 24
// reviews with ratings clustered around the place's real rating and text
// drawn from the band matching each review's rating.
func generateReviews(rng *rand.Rand, placeRating float64) []types.Review {
	base := placeRating
	if base == 0 {
		base = 3.5
	}

	count := rng.Intn(20) + 5
	reviews := make([]types.Review, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		rating := reviewRating(rng, base)
		reviews = append(reviews, types.Review{
			Rating: rating,
			Text:   reviewText(rng, rating),
			Author: fmt.Sprintf("User%d", i+1),
			Date:   now.Add(-time.Duration(rng.Float64() * 365 * 24 * float64(time.Hour))),
		})
	}
	return reviews
}

// reviewRating draws base + uniform(-1, 1), clamped to [1, 5] and rounded
// to one decimal.
func reviewRating(rng *rand.Rand, base float64) float64 {
	rating := base + (rng.Float64()-0.5)*2
	rating = math.Max(1, math.Min(5, rating))
	return math.Round(rating*10) / 10
}

// reviewText concatenates 1 to 3 distinct phrases from the band matching
// the rating: >=4.0 positive, >=3.0 neutral, otherwise negative.
func reviewText(rng *rand.Rand, rating float64) string {
	var phrases []string
	switch {
	case rating >= 4.0:
		phrases = positivePhrases
	case rating >= 3.0:
		phrases = neutralPhrases
	default:
		phrases = negativePhrases
	}

	wanted := rng.Intn(3) + 1
	selected := make([]string, 0, wanted)
	for i := 0; i < wanted; i++ {
		phrase := phrases[rng.Intn(len(phrases))]
		if !contains(selected, phrase) {
			selected = append(selected, phrase)
		}
	}
	return strings.Join(selected, " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CountKeyword counts case-insensitive substring occurrences of keyword
// across all review texts. Matches are substrings, not whole words, and
// overlapping occurrences are each counted.
func CountKeyword(reviews []types.Review, keyword string) int {
	if keyword == "" {
		return 0
	}
	kw := strings.ToLower(keyword)

	total := 0
	for _, review := range reviews {
		text := strings.ToLower(review.Text)
		for i := 0; i+len(kw) <= len(text); i++ {
			if text[i:i+len(kw)] == kw {
				total++
			}
		}
	}
	return total
}

// WeightedRating is the popularity-amplified score rating*ratingCount,
// rounded to one decimal. Zero when either input is absent.
func WeightedRating(rating float64, ratingCount int) float64 {
	return math.Round(rating*float64(ratingCount)*10) / 10
}
