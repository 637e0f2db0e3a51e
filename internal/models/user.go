package models

// User is the authenticated account as returned by the server. It is created
// by register, mutated only server-side, and cleared from the session at logout.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body. The server ignores unknown
// profile fields, so the client sends everything the form collects.
type Registration struct {
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Weight           float64 `json:"weight,omitempty"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal,omitempty"`
	HeightCm         int     `json:"heightCm,omitempty"`
	Age              int     `json:"age,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	ActivityLevel    string  `json:"activityLevel,omitempty"`
}
