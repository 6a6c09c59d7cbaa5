package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"medidrone/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BatteryLevelReader is satisfied by queries.GetBatteryLevelsQueryHandler.
type BatteryLevelReader interface {
	Handle(ctx context.Context, query queries.GetBatteryLevelsQuery) ([]queries.BatteryLevelResponse, error)
}

// BatteryLevelJob periodically writes the battery level of every drone to the battery sink.
type BatteryLevelJob struct {
	reader   BatteryLevelReader
	sink     *slog.Logger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBatteryLevelJob creates the job. schedule is a standard cron expression or a
// descriptor such as "@every 1m".
func NewBatteryLevelJob(reader BatteryLevelReader, sink *slog.Logger, schedule string, logger *slog.Logger) *BatteryLevelJob {
	logger = logger.With("component", "battery_level_job")

	return &BatteryLevelJob{
		reader:   reader,
		sink:     sink,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger{logger: logger}))),
		logger:   logger,
	}
}

// Start schedules the job.
func (j *BatteryLevelJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Battery level job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Battery level job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *BatteryLevelJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Battery level job stopped")
}

// Run writes one line per drone, ordered by id.
func (j *BatteryLevelJob) Run(ctx context.Context) error {
	levels, err := j.reader.Handle(ctx, queries.NewGetBatteryLevelsQuery())
	if err != nil {
		return err
	}

	for _, level := range levels {
		j.sink.InfoContext(ctx, "battery level",
			"drone_id", level.DroneID,
			"serial_number", level.SerialNumber,
			"battery_capacity", level.BatteryCapacity)
	}
	return nil
}

// OpenBatterySink opens path for appending and returns a text logger writing to it,
// along with the function closing the file.
func OpenBatterySink(path string) (*slog.Logger, func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("open battery log %s: %w", path, err)
	}
	return slog.New(slog.NewTextHandler(file, nil)), file.Close, nil
}

// cronLogger routes cron's own messages, recovered panics included, to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
