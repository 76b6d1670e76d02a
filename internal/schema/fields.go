package schema

import "github.com/sbilibin2017/gophpowa/internal/models"

// Base fields of the server level overview.
var serverBaseFields = models.FieldSet{
	{Name: "avg_runtime", Label: "Avg runtime", Type: models.FieldDuration, Desc: "Average query duration"},
	{Name: "calls", Label: "Queries per sec", Type: models.FieldNumber, Desc: "Number of time the query has been executed"},
	{Name: "load", Label: "Runtime per sec", Type: models.FieldDuration, Desc: "Total duration of queries executed"},
	{Name: "total_blks_hit", Label: "Total hit", Type: models.FieldSizeRate, Desc: "Amount of data found in shared buffers"},
	{Name: "total_blks_read", Label: "Total read", Type: models.FieldSizeRate, Desc: "Amount of data found in OS cache or read from disk"},
}

// Base fields of the database and query level overviews.
var databaseBaseFields = models.FieldSet{
	{Name: "avg_runtime", Label: "Avg runtime", Type: models.FieldDuration, Desc: "Average query duration"},
	{Name: "calls", Label: "Queries per sec", Type: models.FieldNumber, Desc: "Number of time the query has been executed, per second"},
	{Name: "load", Label: "Runtime per sec", Type: models.FieldDuration, Desc: "Total duration of queries executed, per second"},
	{Name: "total_blks_hit", Label: "Total shared buffers hit", Type: models.FieldSizeRate, Desc: "Amount of data found in shared buffers"},
	{Name: "total_blks_read", Label: "Total shared buffers miss", Type: models.FieldSizeRate, Desc: "Amount of data found in OS cache or read from disk"},
}

var kcacheFields = models.FieldSet{
	{Name: "total_sys_hit", Label: "Total system cache hit", Type: models.FieldSizeRate, Desc: "Amount of data found in OS cache"},
	{Name: "total_disk_read", Label: "Total disk read", Type: models.FieldSizeRate, Desc: "Amount of data read from disk"},
	{Name: "minflts", Label: "Soft page faults", Type: models.FieldNumber, Desc: "Memory pages not found in the processor's MMU"},
	{Name: "majflts", Label: "Hard page faults", Type: models.FieldNumber, Desc: "Memory pages not found in memory and loaded from storage"},
	{Name: "nvcsws", Label: "Voluntary context switches", Type: models.FieldNumber, Desc: "Number of voluntary context switches"},
	{Name: "nivcsws", Label: "Involuntary context switches", Type: models.FieldNumber, Desc: "Number of involuntary context switches"},
}

var byDatabasesFields = models.FieldSet{
	{Name: "calls", Label: "#Calls", Type: models.FieldNumber, Descending: true},
	{Name: "runtime", Label: "Runtime", Type: models.FieldDuration},
	{Name: "avg_runtime", Label: "Avg runtime", Type: models.FieldDuration},
	{Name: "shared_blks_read", Label: "Blocks read", Type: models.FieldSize},
	{Name: "shared_blks_hit", Label: "Blocks hit", Type: models.FieldSize},
	{Name: "shared_blks_dirtied", Label: "Blocks dirtied", Type: models.FieldSize},
	{Name: "shared_blks_written", Label: "Blocks written", Type: models.FieldSize},
	{Name: "temp_blks_written", Label: "Temp Blocks written", Type: models.FieldSize},
	{Name: "io_time", Label: "I/O time", Type: models.FieldDuration},
}

var allQueriesFields = models.FieldSet{
	{Name: "calls", Label: "#", Type: models.FieldNumber},
	{Name: "runtime", Label: "Time", Type: models.FieldDuration, Descending: true},
	{Name: "avg_runtime", Label: "Avg time", Type: models.FieldDuration},
	{Name: "blks_read_time", Label: "Read", Type: models.FieldDuration},
	{Name: "blks_write_time", Label: "Write", Type: models.FieldDuration},
	{Name: "shared_blks_read", Label: "Read", Type: models.FieldSize},
	{Name: "shared_blks_hit", Label: "Hit", Type: models.FieldSize},
	{Name: "shared_blks_dirtied", Label: "Dirtied", Type: models.FieldSize},
	{Name: "shared_blks_written", Label: "Written", Type: models.FieldSize},
	{Name: "temp_blks_read", Label: "Read", Type: models.FieldSize},
	{Name: "temp_blks_written", Label: "Written", Type: models.FieldSize},
}

var waitCountFields = models.FieldSet{
	{Name: "counts", Label: "# of events", Type: models.FieldNumber, Descending: true},
}
