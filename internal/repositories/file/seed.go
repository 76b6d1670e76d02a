package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sbilibin2017/gophpowa/internal/configs/compressor"
	"github.com/sbilibin2017/gophpowa/internal/models"
)

// SeedReadRepository reads a JSON-lines seed file, gzipped when it ends in .gz.
type SeedReadRepository struct {
	seedFilePath string
	mu           sync.RWMutex
}

// NewSeedReadRepository creates a read repository over path.
func NewSeedReadRepository(path string) *SeedReadRepository {
	return &SeedReadRepository{seedFilePath: path}
}

// List returns every record of the file in order. A missing file holds no records.
func (r *SeedReadRepository) List(ctx context.Context) ([]models.SeedRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := compressor.Open(r.seedFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var records []models.SeedRecord
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec models.SeedRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", r.seedFilePath, line, err)
		}
		if rec.Server == nil && rec.Statement == nil && (rec.Snapshot == nil || rec.Family == "") {
			return nil, fmt.Errorf("%s:%d: record carries nothing to restore", r.seedFilePath, line)
		}
		records = append(records, rec)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
