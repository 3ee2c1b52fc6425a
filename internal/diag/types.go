package diag

// FrameworkSchemaVersion tags every framework result envelope so downstream
// consumers (storage, exporters, UI renderers) can detect shape changes.
const FrameworkSchemaVersion = "1.0"

const (
	MaxQuestionPoints = 20

	// Engine scores below CriticalScoreThreshold raise a critical flag;
	// scores in [CriticalScoreThreshold, WarningScoreThreshold) raise a warning.
	CriticalScoreThreshold = 40
	WarningScoreThreshold  = 70

	// An engine touched by zero answers scores the neutral baseline rather
	// than 0, so unanswered areas are never reported as critical.
	NeutralBaselineScore = 50

	DoNowCap  = 3
	DoNextCap = 5
)

type Engine string

const (
	EngineVision     Engine = "vision"
	EnginePeople     Engine = "people"
	EngineOperations Engine = "operations"
	EngineRevenue    Engine = "revenue"
	EngineFinance    Engine = "finance"
)

// AllEngines fixes the iteration order everywhere scores, flags, and actions
// are produced, which keeps analysis output deterministic.
var AllEngines = []Engine{EngineVision, EnginePeople, EngineOperations, EngineRevenue, EngineFinance}

type Strength string

const (
	StrengthStrong  Strength = "strong"
	StrengthPartial Strength = "partial"
	StrengthWeak    Strength = "weak"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

type Priority string

const (
	PriorityDoNow  Priority = "do_now"
	PriorityDoNext Priority = "do_next"
)

type TriggerKind string

const (
	TriggerWeakEngine   TriggerKind = "weak_engine"
	TriggerCriticalFlag TriggerKind = "critical_flag"
	TriggerWarningFlag  TriggerKind = "warning_flag"
	TriggerQuestionWeak TriggerKind = "question_weak"
)

type FlagSource string

const (
	FlagSourceEngineScore FlagSource = "engine_score"
	FlagSourceQuestion    FlagSource = "question"
)

// Answer is one discrete questionnaire response. Immutable once submitted.
type Answer struct {
	QuestionID string   `json:"question_id"`
	Strength   Strength `json:"strength"`
}

// Question is a static catalog entry. Points maps each strength level to the
// points awarded, with StrengthStrong worth at most MaxQuestionPoints.
type Question struct {
	ID       string
	Prompt   string
	Engines  []Engine
	Points   map[Strength]int
	RedFlags []string
}

// QuestionResult is the per-answer breakdown. Derived during scoring, never
// persisted on its own.
type QuestionResult struct {
	QuestionID    string   `json:"question_id"`
	PointsAwarded int      `json:"points_awarded"`
	MaxPoints     int      `json:"max_points"`
	Engines       []Engine `json:"engines"`
	RedFlags      []string `json:"red_flags,omitempty"`
}

type RedFlag struct {
	ID                string     `json:"id"`
	Engine            Engine     `json:"engine"`
	Description       string     `json:"description"`
	Severity          Severity   `json:"severity"`
	RecommendedAction string     `json:"recommended_action"`
	Source            FlagSource `json:"source"`
	QuestionID        string     `json:"question_id,omitempty"`
}

// ActionTemplate is a static catalog entry describing one reusable
// recommendation and the condition under which it fires.
type ActionTemplate struct {
	ID              string
	Title           string
	Description     string
	Engine          Engine
	Trigger         TriggerKind
	QuestionID      string // question_weak templates only
	Effort          int    // 1 (an afternoon) to 5 (a quarter)
	DefaultPriority Priority
	OwnerSmall      string
	OwnerLarge      string
}

type RecommendedAction struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Owner       string   `json:"owner"`
	Effort      int      `json:"effort"`
	Engine      Engine   `json:"engine"`
	Rationale   string   `json:"rationale"`
}

// GearDefinition is a static catalog entry for one maturity level. The score
// range is the band a business at this gear is expected to score within; the
// mismatch check reports against it.
type GearDefinition struct {
	Level        int
	Label        string
	ScoreFloor   int
	ScoreCeiling int
	Description  string
}

type Gear struct {
	Level  int    `json:"level"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

type MismatchStatus string

const (
	MismatchAligned         MismatchStatus = "aligned"
	MismatchUnderperforming MismatchStatus = "underperforming"
	MismatchReadyToAdvance  MismatchStatus = "ready_to_advance"
)

// GearMismatch is advisory only. It annotates the classified gear, it never
// changes it.
type GearMismatch struct {
	Status MismatchStatus `json:"status"`
	Detail string         `json:"detail"`
}

// Context carries the business facts that accompany framework answers.
// Zero values mean "not provided".
type Context struct {
	SizeBand          string  `json:"size_band,omitempty"`
	AnnualRevenue     float64 `json:"annual_revenue,omitempty"`
	BiggestConstraint string  `json:"biggest_constraint,omitempty"`
	Industry          string  `json:"industry,omitempty"`
}

// FrameworkResult is the uniform envelope produced by RunFrameworkAnalysis.
// Plain serializable data; created once per call and never mutated after.
type FrameworkResult struct {
	SchemaVersion   string              `json:"schema_version"`
	EngineScores    map[Engine]int      `json:"engine_scores"`
	OverallScore    int                 `json:"overall_score"`
	Gear            Gear                `json:"gear"`
	GearMismatch    GearMismatch        `json:"gear_mismatch"`
	RedFlags        []RedFlag           `json:"red_flags"`
	Actions         []RecommendedAction `json:"actions"`
	QuestionResults []QuestionResult    `json:"question_results"`
	Completeness    int                 `json:"completeness"`
}
