package schema

import "github.com/athletetrack/athletetrack/internal/models"

// The per-form schemas. The server re-validates everything; keeping these in
// one place means the TUI forms and the CLI commands enforce identical rules.

func Login() Schema {
	return Schema{
		{Name: "username", Kind: String, Required: true},
		{Name: "password", Kind: String, Required: true},
	}
}

func Register() Schema {
	return Schema{
		{Name: "username", Kind: String, Required: true, MinLen: 3},
		{Name: "password", Kind: String, Required: true, MinLen: 6},
		{Name: "name", Kind: String, Required: true},
		{Name: "role", Kind: String, Required: true},
		{Name: "weight", Kind: Number, Positive: true},
		{Name: "dailyCalorieGoal", Kind: Int, Positive: true},
		{Name: "heightCm", Kind: Int, Positive: true},
		{Name: "age", Kind: Int, Positive: true},
		{Name: "gender", Kind: String},
		{Name: "activityLevel", Kind: String},
		{Name: "agreeTerms", Kind: Bool, MustBeTrue: true},
	}
}

func Metric() Schema {
	return Schema{
		{Name: "metricType", Kind: String, Required: true, OneOf: metricTypeNames()},
		{Name: "value", Kind: Number, Required: true, Positive: true},
		{Name: "unit", Kind: String, Required: true},
		{Name: "date", Kind: Date, Required: true},
		{Name: "notes", Kind: String},
	}
}

func Nutrition() Schema {
	return Schema{
		{Name: "mealType", Kind: String, Required: true, OneOf: models.MealTypes},
		{Name: "foodItems", Kind: String, Required: true, Message: "describe what you ate"},
		{Name: "calories", Kind: Int, Positive: true},
		{Name: "protein", Kind: Int, Positive: true},
		{Name: "date", Kind: Date, Required: true},
	}
}

func Injury() Schema {
	return Schema{
		{Name: "injuryType", Kind: String, Required: true, OneOf: models.InjuryTypes},
		{Name: "bodyPart", Kind: String, Required: true, OneOf: models.BodyParts},
		{Name: "severity", Kind: String, Required: true, OneOf: severityNames()},
		{Name: "status", Kind: String, Required: true, OneOf: injuryStatusNames()},
		{Name: "dateOccurred", Kind: Date, Required: true},
		{Name: "notes", Kind: String},
	}
}

func Finance() Schema {
	return Schema{
		{Name: "category", Kind: String, Required: true, OneOf: models.FinanceCategories},
		{Name: "amount", Kind: Number, Required: true, Positive: true, Message: "amount must be a positive number"},
		{Name: "description", Kind: String, Required: true},
		{Name: "date", Kind: Date, Required: true},
	}
}

func Profile() Schema {
	return Schema{
		{Name: "name", Kind: String, Required: true},
		{Name: "username", Kind: String, Required: true, MinLen: 3},
		{Name: "email", Kind: String},
	}
}

func Advice() Schema {
	return Schema{
		{Name: "question", Kind: String, Required: true, MinLen: 10, Message: "ask a fuller question (at least 10 characters)"},
	}
}

func TrainingPlan() Schema {
	return Schema{
		{Name: "level", Kind: String, Required: true, OneOf: models.FitnessLevels},
		{Name: "goals", Kind: String, Required: true, Message: "list at least one goal"},
		{Name: "constraints", Kind: String},
	}
}

func metricTypeNames() []string {
	out := make([]string, len(models.MetricTypes))
	for i, t := range models.MetricTypes {
		out[i] = string(t)
	}
	return out
}

func severityNames() []string {
	out := make([]string, len(models.Severities))
	for i, s := range models.Severities {
		out[i] = string(s)
	}
	return out
}

func injuryStatusNames() []string {
	out := make([]string, len(models.InjuryStatuses))
	for i, s := range models.InjuryStatuses {
		out[i] = string(s)
	}
	return out
}
