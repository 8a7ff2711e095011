package analyzer

import (
	"log/slog"
	"sort"
	"time"

	"github.com/joseph-ayodele/agent-insights/constants"
	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// Analyzer turns the two normalized datasets into one MetricsRecord. One
// run is a pure function of its inputs; the only state is the optional
// memoization cache keyed by input content digests.
type Analyzer struct {
	logger *slog.Logger
	cache  *resultCache
}

// Input is one analysis run's worth of data. The digests are content
// hashes of the raw input files; when both are present the analyzer can
// reuse a previous result for identical inputs.
type Input struct {
	Roster       []entity.EntityRecord
	Transactions []entity.TransactionRecord
	RosterDigest string
	TxDigest     string
}

func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, cache: newResultCache()}
}

// Analyze computes all metrics for the input, consulting the cache first
// when content digests are available.
func (a *Analyzer) Analyze(in Input, cfg entity.AnalysisConfig) *entity.MetricsRecord {
	cfg = cfg.WithDefaults()
	start := time.Now()

	key := cacheKey(in.RosterDigest, in.TxDigest, cfg)
	if key != "" {
		if rec, ok := a.cache.get(key); ok {
			a.logger.Info("analyze.cache_hit", "key", key)
			return rec
		}
	}

	rec := CalculateAllMetrics(in.Roster, in.Transactions, cfg)

	if key != "" {
		a.cache.put(key, rec)
	}
	a.logger.Info("analyze.ok",
		"year", cfg.TargetYear,
		"roster_rows", len(in.Roster),
		"transaction_rows", len(in.Transactions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec
}

// CalculateAllMetrics is the aggregation core. It never fails: missing
// fields and empty inputs produce zero-valued metrics, and every malformed
// cell was already coerced to nil during normalization.
func CalculateAllMetrics(roster []entity.EntityRecord, txs []entity.TransactionRecord, cfg entity.AnalysisConfig) *entity.MetricsRecord {
	cfg = cfg.WithDefaults()
	rec := &entity.MetricsRecord{
		Year:                cfg.TargetYear,
		TopPerformingAgents: []entity.TopAgent{},
	}

	aggregateRoster(rec, roster, cfg)

	yearTxs := FilterByYear(txs, cfg.TargetYear)
	aggregateTransactions(rec, yearTxs)

	deposits := DepositSubset(yearTxs, cfg.DepositKeywords)
	aggregateDeposits(rec, deposits, cfg)

	return rec
}

func aggregateRoster(rec *entity.MetricsRecord, roster []entity.EntityRecord, cfg entity.AnalysisConfig) {
	if len(roster) == 0 {
		return
	}

	active := FilterActive(roster)
	rec.TotalActiveAgents, rec.TotalActiveTellers = CountByType(active)

	onboarded := FilterRegisteredInYear(active, cfg.TargetYear)
	rec.OnboardedTotal = len(onboarded)
	rec.OnboardedAgents, rec.OnboardedTellers = CountByType(onboarded)

	rec.StatusBreakdown = make(map[string]int)
	rec.EntityBreakdown = make(map[string]int)
	for _, e := range roster {
		if e.Status != "" {
			rec.StatusBreakdown[e.Status]++
		}
		if e.EntityType != "" {
			rec.EntityBreakdown[e.EntityType]++
		}
	}
}

// aggregateTransactions fills the metrics computed over the year-filtered
// transaction table: volume sums the whole year slice, NOT just deposits.
func aggregateTransactions(rec *entity.MetricsRecord, yearTxs []entity.TransactionRecord) {
	rec.TotalTransactions = len(yearTxs)

	distinct := [12]map[string]struct{}{}
	serviceAmount := make(map[string]float64)
	serviceCount := make(map[string]int)

	for _, t := range yearTxs {
		month := t.Month() // always 1..12 inside the year slice
		if t.Amount != nil {
			rec.TransactionVolume += *t.Amount
			rec.MonthlyVolume[month-1] += *t.Amount
		}
		if t.UserID != "" {
			if distinct[month-1] == nil {
				distinct[month-1] = make(map[string]struct{})
			}
			distinct[month-1][t.UserID] = struct{}{}
		}
		if h := t.Hour(); h >= 0 {
			rec.HourlyActivity[h]++
		}
		if constants.IsSuccessStatus(t.Status) {
			rec.SuccessfulTransactions++
		} else if constants.IsFailureStatus(t.Status) {
			rec.FailedTransactions++
		}
		if t.ServiceName != "" {
			serviceCount[t.ServiceName]++
			if t.Amount != nil {
				serviceAmount[t.ServiceName] += *t.Amount
			}
		}
	}

	for m := 0; m < 12; m++ {
		rec.MonthlyDistinctUsers[m] = len(distinct[m])
	}

	for name := range serviceCount {
		rec.ServiceBreakdown = append(rec.ServiceBreakdown, entity.ServiceBreakdown{
			ServiceName:      name,
			TotalAmount:      serviceAmount[name],
			TransactionCount: serviceCount[name],
		})
	}
	sort.Slice(rec.ServiceBreakdown, func(i, j int) bool {
		a, b := rec.ServiceBreakdown[i], rec.ServiceBreakdown[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return a.ServiceName < b.ServiceName
	})
}

func aggregateDeposits(rec *entity.MetricsRecord, deposits []entity.TransactionRecord, cfg entity.AnalysisConfig) {
	perMonthUser := [12]map[string]int{}
	parents := make(map[string]struct{})

	for _, t := range deposits {
		month := t.Month()
		rec.MonthlyDeposits[month-1]++
		if t.UserID != "" {
			if perMonthUser[month-1] == nil {
				perMonthUser[month-1] = make(map[string]int)
			}
			perMonthUser[month-1][t.UserID]++
		}
		if t.ParentUserID != "" {
			parents[t.ParentUserID] = struct{}{}
		}
	}

	// The threshold re-applies per month: activity in one month says
	// nothing about the next.
	for m := 0; m < 12; m++ {
		for _, n := range perMonthUser[m] {
			if n >= cfg.MinDepositsForActive {
				rec.MonthlyActiveUsers[m]++
			}
		}
	}

	// Parent references are taken at face value: a parent ID that never
	// appears in the roster still counts. The subtraction floors at zero
	// because the reference set can exceed the known active agents.
	rec.AgentsWithTellers = len(parents)
	rec.AgentsWithoutTellers = rec.TotalActiveAgents - rec.AgentsWithTellers
	if rec.AgentsWithoutTellers < 0 {
		rec.AgentsWithoutTellers = 0
	}

	rec.ActiveUsersOverall, rec.InactiveUsersOverall = ActivityPartition(deposits, cfg.MinDepositsForActive)
	rec.TopPerformingAgents = RankTopPerformers(deposits, cfg.TopN)
}
