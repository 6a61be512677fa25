package export

import (
	"context"
	"os/exec"
)

// Snapshot готовый к выдаче документ
type Snapshot struct {
	Title       string // предлагаемое имя файла без расширения
	Extension   string // "html", "pdf"
	ContentType string
	Body        []byte
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CommandStarter запускает внешнюю команду без ожидания завершения (для тестирования)
type CommandStarter interface {
	Start(ctx context.Context, name string, args ...string) error
}

// ExecStarter запускает команды через os/exec
type ExecStarter struct{}

// Start запускает команду и не ждёт её завершения.
// Процесс дожидается в отдельной горутине, чтобы не оставлять зомби.
func (ExecStarter) Start(_ context.Context, name string, args ...string) error {
	// Контекст запроса не передаём: печать не должна прерываться вместе с ним
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
