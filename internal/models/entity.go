package models

import (
	"fmt"
	"strings"
)

// Level is the granularity of an EntityKey.
type Level string

// Entity levels, from coarsest to finest.
const (
	LevelServer   Level = "server"   // {server}
	LevelDatabase Level = "database" // {server, database}
	LevelQuery    Level = "query"    // {server, database, query}
	LevelWait     Level = "wait"     // {server, database, query, event type, event}
)

// EntityKey identifies a monitored subject and is the partition key
// of every windowed operation. It is comparable and safe to use as a map key.
type EntityKey struct {
	ServerID  int    `json:"srvid" db:"srvid"`                     // Monitored server identifier.
	Database  string `json:"datname,omitempty" db:"datname"`       // Database name.
	QueryID   int64  `json:"queryid,omitempty" db:"queryid"`       // Normalized query identifier.
	EventType string `json:"event_type,omitempty" db:"event_type"` // Wait event class.
	Event     string `json:"event,omitempty" db:"event"`           // Wait event name.
}

// StatementText is the normalized text of one query of a server.
type StatementText struct {
	ServerID int    `json:"srvid" db:"srvid"`
	Database string `json:"datname" db:"datname"`
	QueryID  int64  `json:"queryid" db:"queryid"`
	Query    string `json:"query" db:"query"`
}

// Key returns the query level key the text belongs to.
func (s StatementText) Key() EntityKey {
	return EntityKey{ServerID: s.ServerID, Database: s.Database, QueryID: s.QueryID}
}

// Level reports the granularity of the key.
func (k EntityKey) Level() Level {
	switch {
	case k.EventType != "" || k.Event != "":
		return LevelWait
	case k.QueryID != 0:
		return LevelQuery
	case k.Database != "":
		return LevelDatabase
	default:
		return LevelServer
	}
}

// Coarsen projects the key onto a coarser level. Projecting onto the
// key's own level, or a finer one, returns the key unchanged.
func (k EntityKey) Coarsen(level Level) EntityKey {
	switch level {
	case LevelServer:
		return EntityKey{ServerID: k.ServerID}
	case LevelDatabase:
		return EntityKey{ServerID: k.ServerID, Database: k.Database}
	case LevelQuery:
		return EntityKey{ServerID: k.ServerID, Database: k.Database, QueryID: k.QueryID}
	default:
		return k
	}
}

// Less orders keys deterministically: server, database, query, event type, event.
func (k EntityKey) Less(o EntityKey) bool {
	if k.ServerID != o.ServerID {
		return k.ServerID < o.ServerID
	}
	if k.Database != o.Database {
		return k.Database < o.Database
	}
	if k.QueryID != o.QueryID {
		return k.QueryID < o.QueryID
	}
	if k.EventType != o.EventType {
		return k.EventType < o.EventType
	}
	return k.Event < o.Event
}

// String renders the key for logs.
func (k EntityKey) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "srvid=%d", k.ServerID)
	if k.Database != "" {
		fmt.Fprintf(&sb, " datname=%s", k.Database)
	}
	if k.QueryID != 0 {
		fmt.Fprintf(&sb, " queryid=%d", k.QueryID)
	}
	if k.EventType != "" {
		fmt.Fprintf(&sb, " event=%s/%s", k.EventType, k.Event)
	}
	return sb.String()
}

// Scope selects which entities of a server a request covers.
type Scope struct {
	Level    Level  `json:"level"`             // Level of the requested entity.
	Database string `json:"datname,omitempty"` // Required for database and query levels.
	QueryID  int64  `json:"queryid,omitempty"` // Required for the query level.
}

// Matches reports whether a (finer) key belongs to the scope.
func (s Scope) Matches(k EntityKey) bool {
	switch s.Level {
	case LevelDatabase:
		return k.Database == s.Database
	case LevelQuery:
		return k.Database == s.Database && k.QueryID == s.QueryID
	default:
		return true
	}
}
