package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/naka-gawa/pulsecheck/internal/logging"
)

// FileGateway reads response envelopes stored as {dir}/{repoName}.json.
type FileGateway struct {
	dir    string
	logger logging.Logger
}

// NewFileGateway creates a FileGateway rooted at dir.
func NewFileGateway(dir string, logger logging.Logger) *FileGateway {
	return &FileGateway{dir: dir, logger: logger.WithName("file-gateway")}
}

// FetchRepo loads the envelope for repoName. A missing file is answered
// like the API answers an unknown repository.
func (g *FileGateway) FetchRepo(ctx context.Context, repoName string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if repoName == "" || strings.ContainsAny(repoName, `/\`) || repoName == "." || repoName == ".." {
		return &Response{Success: false, Error: "Repository name is required"}, nil
	}

	path := filepath.Join(g.dir, repoName+".json")
	g.logger.Debug("Reading repository document", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Response{Success: false, Error: "not found"}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &out, nil
}
