package models

// AdviceContext is the hand-assembled textual context sent with an advice request.
type AdviceContext struct {
	PerformanceHistory string `json:"performanceHistory"`
	NutritionLogs      string `json:"nutritionLogs"`
	Injuries           string `json:"injuries"`
}

// AdviceRequest asks the coach service a question about the athlete's data.
type AdviceRequest struct {
	Question string        `json:"question"`
	Context  AdviceContext `json:"context"`
}

// Advice is the coach service's answer.
type Advice struct {
	Advice           string   `json:"advice"`
	SuggestedActions []string `json:"suggestedActions"`
	Confidence       float64  `json:"confidence"`
}

// FitnessLevels lists the selectable levels for training plan generation.
var FitnessLevels = []string{"beginner", "intermediate", "advanced", "elite"}

// TrainingPlanRequest asks the coach service for a weekly program.
type TrainingPlanRequest struct {
	Level       string   `json:"level"`
	Goals       string   `json:"goals"`
	Constraints []string `json:"constraints"`
}

// ScheduleDay is one day of a generated training plan.
type ScheduleDay struct {
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
	Duration  string   `json:"duration"`
	Intensity string   `json:"intensity"`
}

// TrainingPlan is the coach service's generated weekly program.
type TrainingPlan struct {
	Plan       string                 `json:"plan"`
	Schedule   map[string]ScheduleDay `json:"schedule"`
	Guidelines []string               `json:"guidelines"`
}
