package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/ncruces/go-strftime"

	"writingbuddy/internal/modules/manuscript/domain"
	manuscriptout "writingbuddy/internal/modules/manuscript/port/out"
	apperrors "writingbuddy/internal/platform/errors"
	"writingbuddy/internal/platform/id"
)

const DefaultHistoryLimit = 20

type ManuscriptService struct {
	idGen      id.Generator
	logger     hclog.Logger
	appender   manuscriptout.EntryAppender
	history    manuscriptout.HistoryStore
	dir        string
	fileFormat string
}

// NewManuscriptService writes entries below dir (the working directory when
// empty). history may be nil, which disables the session history.
func NewManuscriptService(idGen id.Generator, logger hclog.Logger, appender manuscriptout.EntryAppender, history manuscriptout.HistoryStore, dir, fileFormat string) *ManuscriptService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ManuscriptService{
		idGen:      idGen,
		logger:     logger.Named("manuscript"),
		appender:   appender,
		history:    history,
		dir:        dir,
		fileFormat: fileFormat,
	}
}

// Destination expands the file format with the session start time.
func (s *ManuscriptService) Destination(startedAt time.Time) (string, error) {
	name := strings.TrimSpace(strftime.Format(s.fileFormat, startedAt))
	if name == "" {
		return "", fmt.Errorf("file format %q yields no file name: %w", s.fileFormat, apperrors.ErrInvalidInput)
	}
	if s.dir == "" || filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(s.dir, name), nil
}

// Save appends the entry and, when history is enabled, records the session.
// A failed history write is logged; the text is already on disk by then.
func (s *ManuscriptService) Save(ctx context.Context, entry domain.Entry, record domain.Record) (domain.Record, int, error) {
	if err := entry.Validate(); err != nil {
		return domain.Record{}, 0, fmt.Errorf("%v: %w", err, apperrors.ErrEmptyManuscript)
	}
	path, err := s.Destination(record.StartedAt)
	if err != nil {
		return domain.Record{}, 0, err
	}
	n, err := s.appender.Append(ctx, path, entry)
	if err != nil {
		return domain.Record{}, 0, fmt.Errorf("append entry: %w", err)
	}
	record.Path = path
	record.Title = entry.Title
	s.logger.Info("entry appended", "path", path, "bytes", n)

	if s.history == nil {
		return record, n, nil
	}
	record.ID = s.idGen.New()
	if err := s.history.Record(ctx, record); err != nil {
		s.logger.Warn("record history", "error", err)
		record.ID = ""
		return record, n, nil
	}
	s.logger.Debug("history recorded", "id", record.ID)
	return record, n, nil
}

func (s *ManuscriptService) History(ctx context.Context, limit int) ([]domain.Record, error) {
	if s.history == nil {
		return nil, apperrors.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.history.Recent(ctx, limit)
}
