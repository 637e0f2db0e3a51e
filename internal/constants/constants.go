package constants

import "time"

const (
	AppName           = "athletetrack"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/athletetrack"
	DefaultServerURL  = "http://localhost:5000"

	// EnvServerURL overrides the backend base URL (also read from .env).
	EnvServerURL = "ATHLETETRACK_SERVER"

	// CookieFileName is the only client-side persisted state: the session cookie jar.
	CookieFileName = "session.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// AnalyzeDebounce is how long the nutrition form waits after typing stops
	// before asking the server to estimate calories and protein.
	AnalyzeDebounce = 1500 * time.Millisecond

	// AnalyzeMinLength is the minimum foodItems length that triggers analysis.
	AnalyzeMinLength = 10

	// TableRowLimit caps record tables on the domain pages.
	TableRowLimit = 10

	// ToastDuration is how long transient status toasts stay visible.
	ToastDuration = 4 * time.Second
)

// Resource tags identify server collections in query-cache keys.
const (
	ResourceMetrics   = "/api/metrics"
	ResourceNutrition = "/api/nutrition"
	ResourceInjuries  = "/api/injuries"
	ResourceFinances  = "/api/finances"
)

// Client routes, matching the server-rendered SPA paths the backend links to.
const (
	RouteDashboard   = "/"
	RoutePerformance = "/performance"
	RouteNutrition   = "/nutrition"
	RouteInjuries    = "/injuries"
	RouteFinances    = "/finances"
	RouteCoach       = "/ai-coach"
	RouteSettings    = "/settings"
	RouteAuth        = "/auth"
)
