package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/query"
	"github.com/athletetrack/athletetrack/internal/session"
	"github.com/athletetrack/athletetrack/internal/stats"
	"github.com/athletetrack/athletetrack/internal/tui/components/authview"
	"github.com/athletetrack/athletetrack/internal/tui/components/coach"
	"github.com/athletetrack/athletetrack/internal/tui/components/dashboard"
	"github.com/athletetrack/athletetrack/internal/tui/components/records"
	"github.com/athletetrack/athletetrack/internal/tui/components/settingsview"
)

// tabOrder is the page cycle for tab/shift+tab while authenticated.
var tabOrder = []View{
	ViewDashboard,
	ViewPerformance,
	ViewNutrition,
	ViewInjuries,
	ViewFinances,
	ViewCoach,
	ViewSettings,
}

// Model is the root application model: it owns the session, the query cache
// and the router, and delegates everything page-specific to the components.
type Model struct {
	client  *api.Client
	session *session.Session
	cache   *query.Cache

	view        View
	initialPath string
	keys        KeyMap
	help        help.Model
	showHelp    bool
	toast       toast
	spinner     spinner.Model
	width       int
	height      int
	quitting    bool

	authPending bool

	auth     authview.Model
	dash     dashboard.Model
	perf     records.PerformanceModel
	nutr     records.NutritionModel
	inj      records.InjuriesModel
	fin      records.FinancesModel
	coach    coach.Model
	settings settingsview.Model
}

// NewModel builds the root model. openPath is the optional route argument; it
// is resolved once the session rehydration answers.
func NewModel(client *api.Client, openPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		client:      client,
		session:     session.New(),
		cache:       query.NewCache(),
		initialPath: openPath,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		auth:        authview.New(),
		dash:        dashboard.New(),
		perf:        records.NewPerformance(),
		nutr:        records.NewNutrition(),
		inj:         records.NewInjuries(),
		fin:         records.NewFinances(),
		coach:       coach.New(),
		settings:    settingsview.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, session.RehydrateCmd(m.client))
}

// userID is the cache key component for the current user. Empty while
// anonymous, which keeps observers disabled.
func (m Model) userID() string {
	if !m.session.Authenticated() {
		return ""
	}
	return strconv.Itoa(m.session.User().ID)
}

func (m Model) key(resource string) query.Key {
	return query.Key{Resource: resource, UserID: m.userID()}
}

// fetcherFor binds a resource to its API call for the current user.
func (m Model) fetcherFor(resource string) query.Fetcher {
	id := m.session.User().ID
	switch resource {
	case constants.ResourceMetrics:
		return func(ctx context.Context) (interface{}, error) { return m.client.Metrics(ctx, id) }
	case constants.ResourceNutrition:
		return func(ctx context.Context) (interface{}, error) { return m.client.NutritionLogs(ctx, id) }
	case constants.ResourceInjuries:
		return func(ctx context.Context) (interface{}, error) { return m.client.Injuries(ctx, id) }
	case constants.ResourceFinances:
		return func(ctx context.Context) (interface{}, error) { return m.client.Finances(ctx, id) }
	}
	return nil
}

// viewResources lists the cached resources a view reads.
func viewResources(v View) []string {
	switch v {
	case ViewDashboard:
		return []string{constants.ResourceMetrics, constants.ResourceNutrition, constants.ResourceInjuries, constants.ResourceFinances}
	case ViewPerformance:
		return []string{constants.ResourceMetrics}
	case ViewNutrition:
		return []string{constants.ResourceNutrition}
	case ViewInjuries:
		return []string{constants.ResourceInjuries}
	case ViewFinances:
		return []string{constants.ResourceFinances}
	case ViewCoach:
		// Advice context is assembled from whatever is cached.
		return []string{constants.ResourceMetrics, constants.ResourceNutrition, constants.ResourceInjuries}
	}
	return nil
}

// ensureData starts fetches for everything the view needs. Fresh entries and
// in-flight fetches yield nil commands, so repeated navigation is free.
func (m *Model) ensureData(v View) tea.Cmd {
	if !m.session.Authenticated() {
		return nil
	}
	var cmds []tea.Cmd
	for _, resource := range viewResources(v) {
		if cmd := m.cache.Fetch(m.key(resource), m.fetcherFor(resource)); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// navigate gates the target against the session and primes its data.
func (m *Model) navigate(target View) tea.Cmd {
	m.view = resolve(target, m.session.Phase())
	if m.view == ViewDashboard {
		m.dash.ResetInsight()
	}
	m.syncPages()
	return m.ensureData(m.view)
}

// cachedRecords reads a typed slice out of the cache.
func cachedRecords[T any](m *Model, resource string) []T {
	return query.Records[T](m.cache.Get(m.key(resource)))
}

// syncPages pushes the cache's current view of each resource into the pages.
func (m *Model) syncPages() {
	metricsRes := m.cache.Get(m.key(constants.ResourceMetrics))
	nutritionRes := m.cache.Get(m.key(constants.ResourceNutrition))
	injuriesRes := m.cache.Get(m.key(constants.ResourceInjuries))
	financesRes := m.cache.Get(m.key(constants.ResourceFinances))

	m.perf.Set(query.Records[models.PerformanceMetric](metricsRes), metricsRes.Loading, metricsRes.Err)
	m.nutr.Set(query.Records[models.NutritionLog](nutritionRes), nutritionRes.Loading, nutritionRes.Err)
	m.inj.Set(query.Records[models.Injury](injuriesRes), injuriesRes.Loading, injuriesRes.Err)
	m.fin.Set(query.Records[models.Finance](financesRes), financesRes.Loading, financesRes.Err)

	// The dashboard spins until all four resolve.
	dashLoading := metricsRes.Loading || nutritionRes.Loading || injuriesRes.Loading || financesRes.Loading
	m.dash.Set(
		query.Records[models.PerformanceMetric](metricsRes),
		query.Records[models.NutritionLog](nutritionRes),
		query.Records[models.Injury](injuriesRes),
		query.Records[models.Finance](financesRes),
		dashLoading,
	)
}

// adviceContext assembles the coach context from cached records.
func (m *Model) adviceContext() models.AdviceContext {
	return stats.BuildAdviceContext(
		cachedRecords[models.PerformanceMetric](m, constants.ResourceMetrics),
		cachedRecords[models.NutritionLog](m, constants.ResourceNutrition),
		cachedRecords[models.Injury](m, constants.ResourceInjuries),
	)
}
