package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
	"ordertracker/pkg/logger"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	Do(context.Context) error

	// Info - имя задачи для логов и метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

var (
	TaskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ordertracker",
			Subsystem: "background",
			Name:      "task_runs_total",
			Help:      "Background task executions by outcome",
		},
		[]string{"task", "phase", "status"},
	)

	TaskLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "ordertracker",
			Subsystem: "background",
			Name:      "task_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		},
		[]string{"task"},
	)
)

const (
	phaseWarmup   = "warmup"
	phasePeriodic = "periodic"
)

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New прогревает задачи (каждая выполняется один раз, параллельно) и запускает
// их периодическое выполнение до отмены ctx. Ошибка или паника прогрева
// возвращается из New, и Worker не создается.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("Initializing", logger.NewField("task", task.Info()))
			return worker.run(initCtx, task, phaseWarmup)
		})
	}
	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.runPeriodically(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока все периодические задачи не остановятся.
// Возвращает управление только после отмены контекста, переданного в New.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runPeriodically(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			// периодическая ошибка уже залогирована, задача продолжает работать
			_ = w.run(ctx, task, phasePeriodic)
		}
	}
}

// run выполняет задачу один раз и превращает панику в ошибку.
func (w *Worker) run(ctx context.Context, task Task, phase string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("%s panic: %v", phase, r)
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("phase", phase),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
		w.record(task, phase, err)
	}()

	err = task.Do(ctx)
	if err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("phase", phase),
			logger.NewField("error", err),
		)
	}
	return err
}

func (w *Worker) record(task Task, phase string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	} else {
		TaskLastSuccess.WithLabelValues(task.Info()).SetToCurrentTime()
	}
	TaskRunsTotal.WithLabelValues(task.Info(), phase, status).Inc()
}
