package models

import "time"

// MealTypes lists the selectable meal types in display order.
var MealTypes = []string{
	"Breakfast",
	"Morning Snack",
	"Lunch",
	"Afternoon Snack",
	"Dinner",
	"Evening Snack",
	"Pre-Workout",
	"Post-Workout",
	"Supplement",
}

// NutritionLog is one recorded meal. Calories and protein are pointers because
// the server may omit them and the form tolerates empty values.
type NutritionLog struct {
	ID        int       `json:"id,omitempty"`
	UserID    int       `json:"userId"`
	MealType  string    `json:"mealType"`
	FoodItems string    `json:"foodItems"`
	Calories  *int      `json:"calories,omitempty"`
	Protein   *int      `json:"protein,omitempty"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
}

// CaloriesOrZero returns the calorie count, treating absent as 0.
func (n NutritionLog) CaloriesOrZero() int {
	if n.Calories == nil {
		return 0
	}
	return *n.Calories
}

// ProteinOrZero returns the protein grams, treating absent as 0.
func (n NutritionLog) ProteinOrZero() int {
	if n.Protein == nil {
		return 0
	}
	return *n.Protein
}

// NutritionAnalysis is the server's estimate for a free-text food list.
type NutritionAnalysis struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
}
