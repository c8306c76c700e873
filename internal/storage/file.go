package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	myErr "monad-feedback/internal/types/errors"
)

// FileStorage - локальный fallback-бэкенд, используется когда DATABASE_URL
// не настроен. Каждая коллекция - JSON lines файл в рабочей директории.
type FileStorage struct {
	Logger *zap.SugaredLogger

	mu           sync.Mutex
	feedbackPath string
	historyPath  string
}

func NewFileStorage(dir string, logger *zap.SugaredLogger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Failed to create storage directory", zap.Error(err))

		return nil, err
	}

	return &FileStorage{
		Logger:       logger,
		feedbackPath: filepath.Join(dir, "feedback.jsonl"),
		historyPath:  filepath.Join(dir, "user_history.jsonl"),
	}, nil
}

func (fileStorage *FileStorage) AppendPair(
	ctx context.Context,
	fb feedback.Record,
	h history.Record,
) error {
	if err := fileStorage.AppendFeedback(ctx, fb); err != nil {
		return err
	}

	if err := fileStorage.AppendHistory(ctx, h); err != nil {
		fileStorage.Logger.Errorw(
			"History append failed after feedback append, pair is orphaned",
			"feedbackID", fb.ID,
		)

		return err
	}

	return nil
}

func (fileStorage *FileStorage) AppendFeedback(_ context.Context, fb feedback.Record) error {
	return fileStorage.appendLine(fileStorage.feedbackPath, fb)
}

func (fileStorage *FileStorage) AppendHistory(_ context.Context, h history.Record) error {
	return fileStorage.appendLine(fileStorage.historyPath, h)
}

func (fileStorage *FileStorage) ListFeedback(_ context.Context) ([]feedback.Record, error) {
	var records []feedback.Record
	err := fileStorage.readLines(fileStorage.feedbackPath, func(line []byte) error {
		var record feedback.Record
		if err := json.Unmarshal(line, &record); err != nil {
			return err
		}
		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AnonymizedTimestamp.After(records[j].AnonymizedTimestamp)
	})

	return records, nil
}

func (fileStorage *FileStorage) ListHistory(_ context.Context) ([]history.Record, error) {
	var records []history.Record
	err := fileStorage.readLines(fileStorage.historyPath, func(line []byte) error {
		var record history.Record
		if err := json.Unmarshal(line, &record); err != nil {
			return err
		}
		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AnonymizedTimestamp.After(records[j].AnonymizedTimestamp)
	})

	return records, nil
}

// UpgradeSchema - записи в файле несут поля прямо в JSON, обновлять нечего
func (fileStorage *FileStorage) UpgradeSchema(_ context.Context) error {
	return nil
}

func (fileStorage *FileStorage) appendLine(path string, value interface{}) error {
	fileStorage.mu.Lock()
	defer fileStorage.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		fileStorage.Logger.Error("Failed to encode record to JSON", zap.Error(err))

		return myErr.ErrDBInternal
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fileStorage.Logger.Error("Failed to open storage file", zap.Error(err), zap.String("path", path))

		return myErr.ErrDBInternal
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		fileStorage.Logger.Error("Failed to write record to storage file", zap.Error(err))

		return myErr.ErrDBInternal
	}

	return nil
}

func (fileStorage *FileStorage) readLines(path string, handle func(line []byte) error) error {
	fileStorage.mu.Lock()
	defer fileStorage.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // пустое хранилище
		}
		fileStorage.Logger.Error("Failed to open storage file", zap.Error(err), zap.String("path", path))

		return myErr.ErrDBInternal
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := handle(line); err != nil {
			fileStorage.Logger.Error("Failed to decode record from storage file", zap.Error(err))

			return myErr.ErrDBInternal
		}
	}

	if err := scanner.Err(); err != nil {
		fileStorage.Logger.Error("Failed to read storage file", zap.Error(err))

		return myErr.ErrDBInternal
	}

	return nil
}
