/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	maxRoundData int64 = 1 << 20
	fetchTimeout       = 10 * time.Second
)

type roundFile struct {
	Rounds []Round `json:"rounds" yaml:"rounds"`
}

// FormatFor picks the round file format from a file name or URL.
func FormatFor(name string) string {
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		name = u.Path
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseRounds decodes and validates round data. Every failure wraps ErrDataLoad.
func ParseRounds(data []byte, format string) ([]Round, error) {
	var f roundFile

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	if err := validateRounds(f.Rounds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	return f.Rounds, nil
}

func validateRounds(rounds []Round) error {
	if len(rounds) == 0 {
		return errors.New("no rounds found")
	}

	for i, r := range rounds {
		if strings.TrimSpace(r.Question) == "" {
			return fmt.Errorf("round %d has no question", i+1)
		}

		if len(r.Answers) == 0 || len(r.Answers) > MaxAnswers {
			return fmt.Errorf("round %d has %d answers (must be 1-%d)", i+1, len(r.Answers), MaxAnswers)
		}

		for j, a := range r.Answers {
			if strings.TrimSpace(a.Text) == "" {
				return fmt.Errorf("round %d answer %d is blank", i+1, j+1)
			}

			if a.Points < 0 {
				return fmt.Errorf("round %d answer %d has negative points: %d", i+1, j+1, a.Points)
			}
		}
	}

	return nil
}

// LoadRounds reads round data from a file path or an http(s) URL.
// A missing file or a 404 returns ErrNotLoaded; any other failure wraps ErrDataLoad.
func LoadRounds(ctx context.Context, src string) ([]Round, error) {
	var data []byte
	var err error

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		data, err = fetchRounds(ctx, src)
	} else {
		data, err = os.ReadFile(src)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNotLoaded, src)
		}
		if err != nil {
			err = fmt.Errorf("%w: reading %s: %w", ErrDataLoad, src, err)
		}
	}
	if err != nil {
		return nil, err
	}

	rounds, err := ParseRounds(data, FormatFor(src))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}

	return rounds, nil
}

func fetchRounds(ctx context.Context, src string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrDataLoad, src, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s returned %s", ErrNotLoaded, src, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s returned %s", ErrDataLoad, src, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRoundData))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrDataLoad, src, err)
	}

	return data, nil
}
