package schema

import (
	"strings"

	"github.com/sbilibin2017/gophpowa/internal/models"
)

// Vocabulary is the set of wait event classes reported by one engine generation.
type Vocabulary struct {
	Name   string
	Fields models.FieldSet
}

var (
	lwlockNamed   = models.FieldDef{Name: "count_lwlocknamed", Label: "Lightweight Named", Type: models.FieldNumber, Desc: "Number of named lightweight lock wait events"}
	lwlockTranche = models.FieldDef{Name: "count_lwlocktranche", Label: "Lightweight Tranche", Type: models.FieldNumber, Desc: "Number of lightweight lock tranche wait events"}
	lwlock        = models.FieldDef{Name: "count_lwlock", Label: "Lightweight Lock", Type: models.FieldNumber, Desc: "Number of wait events due to lightweight locks"}
	lock          = models.FieldDef{Name: "count_lock", Label: "Lock", Type: models.FieldNumber, Desc: "Number of wait events due to heavyweight locks"}
	bufferPin     = models.FieldDef{Name: "count_bufferpin", Label: "Buffer pin", Type: models.FieldNumber, Desc: "Number of wait events due to buffer pin"}
	activity      = models.FieldDef{Name: "count_activity", Label: "Activity", Type: models.FieldNumber, Desc: "Number of wait events due to postgres internal processes activity"}
	client        = models.FieldDef{Name: "count_client", Label: "Client", Type: models.FieldNumber, Desc: "Number of wait events due to client activity"}
	extension     = models.FieldDef{Name: "count_extension", Label: "Extension", Type: models.FieldNumber, Desc: "Number wait events due to third-party extensions"}
	ipc           = models.FieldDef{Name: "count_ipc", Label: "IPC", Type: models.FieldNumber, Desc: "Number of wait events due to inter-process communication"}
	timeout       = models.FieldDef{Name: "count_timeout", Label: "Timeout", Type: models.FieldNumber, Desc: "Number of wait events due to timeouts"}
	io            = models.FieldDef{Name: "count_io", Label: "IO", Type: models.FieldNumber, Desc: "Number of wait events due to IO operations"}
)

// The two wait vocabularies.
var (
	VocabularyPre10 = Vocabulary{
		Name:   "pre10",
		Fields: models.FieldSet{lwlockNamed, lwlockTranche, lock, bufferPin},
	}
	Vocabulary10 = Vocabulary{
		Name:   "10+",
		Fields: models.FieldSet{lwlock, lock, bufferPin, activity, client, extension, ipc, timeout, io},
	}
)

// VocabularyFor selects the vocabulary of an engine version. An unknown
// version selects the pre-10 vocabulary.
func VocabularyFor(versionNum int, known bool) Vocabulary {
	if known && versionNum >= models.VersionNum10 {
		return Vocabulary10
	}
	return VocabularyPre10
}

// WaitField returns the field a wait event type is counted under.
func WaitField(eventType string) string {
	return "count_" + strings.ToLower(eventType)
}

// Has reports whether the vocabulary counts the given event type.
func (v Vocabulary) Has(eventType string) bool {
	return v.Fields.Has(WaitField(eventType))
}
