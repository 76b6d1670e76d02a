// Package schema resolves which fields a metric group exposes for a given
// server. Resolution is a pure function of the group and the server's
// capabilities; every call returns freshly built field sets.
package schema

import (
	"fmt"
	"slices"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Kind tells whether a group renders as a time series or as a grid.
type Kind string

// Group kinds.
const (
	KindSeries  Kind = "series"
	KindRanking Kind = "ranking"
)

// Metric group names.
const (
	GroupDatabasesGlobals        = "databases_globals"
	GroupDatabaseOverview        = "database_overview"
	GroupQueryOverview           = "query_overview"
	GroupDatabasesWaits          = "databases_waits"
	GroupDatabaseWaitsOverview   = "database_waits_overview"
	GroupByDatabases             = "by_databases"
	GroupDatabaseAllQueries      = "database_all_queries"
	GroupWaitEventByDatabases    = "wait_event_by_databases"
	GroupDatabaseAllQueriesWaits = "database_all_queries_waits"
)

// GroupDef is the static definition of a metric group.
type GroupDef struct {
	Name     string
	Kind     Kind
	Scope    models.Level  // Level of the entity a request names.
	RowLevel models.Level  // Level records or rows are aggregated at.
	ByEvent  bool          // Rows additionally keyed by wait event.
	Family   models.Family // Base counter family.
	Requires string        // Extension without which the group cannot be served.
	Widened  bool          // Optional extension fields are merged when available.
}

var groups = map[string]GroupDef{
	GroupDatabasesGlobals: {
		Name: GroupDatabasesGlobals, Kind: KindSeries,
		Scope: models.LevelServer, RowLevel: models.LevelServer,
		Family: models.FamilyStatements, Widened: true,
	},
	GroupDatabaseOverview: {
		Name: GroupDatabaseOverview, Kind: KindSeries,
		Scope: models.LevelDatabase, RowLevel: models.LevelDatabase,
		Family: models.FamilyStatements, Widened: true,
	},
	GroupQueryOverview: {
		Name: GroupQueryOverview, Kind: KindSeries,
		Scope: models.LevelQuery, RowLevel: models.LevelQuery,
		Family: models.FamilyStatements, Widened: true,
	},
	GroupDatabasesWaits: {
		Name: GroupDatabasesWaits, Kind: KindSeries,
		Scope: models.LevelServer, RowLevel: models.LevelServer,
		Family: models.FamilyWaits, Requires: models.ExtensionWaitSampling,
	},
	GroupDatabaseWaitsOverview: {
		Name: GroupDatabaseWaitsOverview, Kind: KindSeries,
		Scope: models.LevelDatabase, RowLevel: models.LevelDatabase,
		Family: models.FamilyWaits, Requires: models.ExtensionWaitSampling,
	},
	GroupByDatabases: {
		Name: GroupByDatabases, Kind: KindRanking,
		Scope: models.LevelServer, RowLevel: models.LevelDatabase,
		Family: models.FamilyStatements,
	},
	GroupDatabaseAllQueries: {
		Name: GroupDatabaseAllQueries, Kind: KindRanking,
		Scope: models.LevelDatabase, RowLevel: models.LevelQuery,
		Family: models.FamilyStatements,
	},
	GroupWaitEventByDatabases: {
		Name: GroupWaitEventByDatabases, Kind: KindRanking,
		Scope: models.LevelServer, RowLevel: models.LevelDatabase, ByEvent: true,
		Family: models.FamilyWaits, Requires: models.ExtensionWaitSampling,
	},
	GroupDatabaseAllQueriesWaits: {
		Name: GroupDatabaseAllQueriesWaits, Kind: KindRanking,
		Scope: models.LevelDatabase, RowLevel: models.LevelQuery, ByEvent: true,
		Family: models.FamilyWaits, Requires: models.ExtensionWaitSampling,
	},
}

// Lookup returns the definition of a group.
func Lookup(name string) (GroupDef, error) {
	g, ok := groups[name]
	if !ok {
		return GroupDef{}, fmt.Errorf("%w: %q", models.ErrUnknownGroup, name)
	}
	return g, nil
}

// Groups returns every group definition ordered by name.
func Groups() []GroupDef {
	out := make([]GroupDef, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b GroupDef) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}

// Resolved is the schema of one group for one server.
type Resolved struct {
	Group      GroupDef
	Fields     models.FieldSet
	Kcache     bool       // kcache fields are part of the schema.
	Waits      bool       // Wait counters are part of the schema.
	Vocabulary Vocabulary // Meaningful when Waits is set.
}

// RankBy returns the field a grid is ordered by, descending.
func (r Resolved) RankBy() string {
	for _, f := range r.Fields {
		if f.Descending {
			return f.Name
		}
	}
	return ""
}

// ResolveSchema returns the fields group exposes given caps.
func ResolveSchema(group string, caps models.CapabilitySet) (Resolved, error) {
	g, err := Lookup(group)
	if err != nil {
		return Resolved{}, err
	}
	if g.Requires != "" && !caps.Has(g.Requires) {
		return Resolved{}, &models.CapabilityMissingError{ServerID: caps.ServerID, Name: g.Requires}
	}

	res := Resolved{
		Group:      g,
		Vocabulary: VocabularyFor(caps.Version()),
	}

	switch g.Kind {
	case KindRanking:
		switch {
		case g.Family == models.FamilyWaits:
			res.Fields = slices.Clone(waitCountFields)
			res.Waits = true
		case g.RowLevel == models.LevelQuery:
			res.Fields = slices.Clone(allQueriesFields)
		default:
			res.Fields = slices.Clone(byDatabasesFields)
		}
		return res, nil
	}

	if g.Family == models.FamilyWaits {
		res.Fields = slices.Clone(res.Vocabulary.Fields)
		res.Waits = true
		return res, nil
	}

	if g.Scope == models.LevelServer {
		res.Fields = slices.Clone(serverBaseFields)
	} else {
		res.Fields = slices.Clone(databaseBaseFields)
	}
	if g.Widened && caps.Has(models.ExtensionKcache) {
		res.Fields = append(res.Fields, kcacheFields...)
		res.Kcache = true
	}
	if g.Widened && caps.Has(models.ExtensionWaitSampling) {
		res.Fields = append(res.Fields, res.Vocabulary.Fields...)
		res.Waits = true
	}
	return res, nil
}
