package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileExporter сохраняет документ в каталог и, если задана команда печати,
// передаёт файл ей (например, "lp"), не дожидаясь завершения печати.
type FileExporter struct {
	dir          string
	printCommand []string
	starter      CommandStarter
	logger       Logger
}

// NewFileExporter создает экспортёр в файловую систему.
// printCommand может быть пустым: тогда документ только сохраняется.
func NewFileExporter(dir string, printCommand []string, logger Logger) *FileExporter {
	return &FileExporter{
		dir:          dir,
		printCommand: printCommand,
		starter:      ExecStarter{},
		logger:       logger,
	}
}

// WithStarter подменяет запуск внешних команд (для тестирования)
func (e *FileExporter) WithStarter(starter CommandStarter) *FileExporter {
	e.starter = starter
	return e
}

// Export записывает снимок в <dir>/<title>.<ext> и возвращает путь к файлу
func (e *FileExporter) Export(ctx context.Context, snap Snapshot) (string, error) {
	// 1. Открываем поверхность вывода
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create dir %s: %v", ErrSurfaceUnavailable, e.dir, err)
	}

	path := filepath.Join(e.dir, FileName(snap.Title, snap.Extension))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrSurfaceUnavailable, path, err)
	}

	// 2. Записываем документ и освобождаем файл
	if _, err := f.Write(snap.Body); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", ErrWrite, path, err)
	}

	e.logger.Info("Export: document written to %s (%d bytes)", path, len(snap.Body))

	// 3. Отправляем на печать без ожидания результата
	if len(e.printCommand) > 0 {
		args := append(append([]string{}, e.printCommand[1:]...), path)
		if err := e.starter.Start(ctx, e.printCommand[0], args...); err != nil {
			// Документ уже сохранён, поэтому ошибка печати не считается ошибкой экспорта
			e.logger.Warn("Export: failed to start print command %q for %s: %v", e.printCommand[0], path, err)
		} else {
			e.logger.Info("Export: print command %q started for %s", e.printCommand[0], path)
		}
	}

	return path, nil
}
