// Package seed provides the sample recipes used to populate an empty store.
package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pageza/moodbites/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// ObjectFetcher reads objects from S3; config.S3Config satisfies it
type ObjectFetcher interface {
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// Loader resolves a seed source into recipes
type Loader struct {
	S3 ObjectFetcher
}

// IsS3Source reports whether source is an s3://bucket/key URI
func IsS3Source(source string) bool {
	return strings.HasPrefix(source, "s3://")
}

// Load returns the recipes named by source. An empty source yields the
// built-in sample set; otherwise source is a local file path or an
// s3://bucket/key URI holding a JSON or YAML list of records.
func (l *Loader) Load(ctx context.Context, source string) ([]models.Recipe, error) {
	if source == "" {
		return SampleRecipes(), nil
	}

	data, name, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	records, err := decode(data, name)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed source %s: %w", source, err)
	}
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, len(records))
	for i, r := range records {
		recipes[i] = r.ToModel()
	}
	return recipes, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, string, error) {
	if !IsS3Source(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read seed file: %w", err)
		}
		return data, source, nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, "", fmt.Errorf("invalid seed source %q: %w", source, err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, "", fmt.Errorf("invalid seed source %q: want s3://bucket/key", source)
	}
	if l.S3 == nil {
		return nil, "", fmt.Errorf("seed source %q needs an S3 client", source)
	}

	data, err := l.S3.FetchObject(ctx, u.Host, key)
	if err != nil {
		return nil, "", err
	}
	return data, key, nil
}

func decode(data []byte, name string) ([]Record, error) {
	var records []Record
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records")
	}
	return records, nil
}
