package invoice

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-HotelBillService/internal/domain"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/barcode"
)

// State снимок текущего состояния счёта
type State struct {
	Invoice domain.Invoice
	Symbol  *barcode.Symbol // nil, если штрихкод не удалось построить
}

// Repository хранит текущий счёт, его штрихкод и заголовок окна.
// Одно состояние на процесс, доступ из нескольких HTTP-запросов защищён мьютексом.
type Repository struct {
	mu         sync.RWMutex
	invoice    domain.Invoice
	symbol     *barcode.Symbol
	printing   int    // число выдач в процессе
	printTitle string // заголовок последней начатой выдачи
}

// NewRepository создает хранилище с начальным счётом
func NewRepository(initial domain.Invoice, symbol *barcode.Symbol) *Repository {
	return &Repository{
		invoice: initial,
		symbol:  symbol,
	}
}

// Get возвращает текущее состояние
func (r *Repository) Get(_ context.Context) State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return State{Invoice: r.invoice, Symbol: r.symbol}
}

// Update применяет fn к текущему состоянию атомарно.
// Если fn вернула ошибку, состояние не меняется.
func (r *Repository) Update(_ context.Context, fn func(State) (State, error)) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(State{Invoice: r.invoice, Symbol: r.symbol})
	if err != nil {
		return State{Invoice: r.invoice, Symbol: r.symbol}, err
	}

	r.invoice = next.Invoice
	r.symbol = next.Symbol
	return next, nil
}

// Title возвращает текущий заголовок окна: заголовок последней начатой выдачи,
// пока хотя бы одна выдача не завершена, иначе domain.ViewTitle.
func (r *Repository) Title(_ context.Context) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.printing > 0 {
		return r.printTitle
	}
	return domain.ViewTitle
}

// BeginPrint подменяет заголовок окна на время выдачи.
// Каждому успешному BeginPrint должен соответствовать один EndPrint.
func (r *Repository) BeginPrint(_ context.Context, title string) error {
	if title == "" {
		return ErrEmptyTitle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.printing++
	r.printTitle = title
	return nil
}

// EndPrint завершает выдачу. После завершения последней заголовок снова domain.ViewTitle.
func (r *Repository) EndPrint(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.printing > 0 {
		r.printing--
	}
	if r.printing == 0 {
		r.printTitle = ""
	}
}
