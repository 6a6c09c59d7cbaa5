// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BatteryLevelJob reads the battery level of every drone and writes one line per drone
// to a dedicated text log (BATTERY_LOG_FILE), on the BATTERY_LOG_SCHEDULE schedule.
//
// # Usage
//
//	sink, closeSink, err := jobs.OpenBatterySink("battery_levels.log")
//	if err != nil {
//		return err
//	}
//	defer closeSink()
//
//	jobManager := jobs.NewJobManager(batteryLevelsHandler, sink, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the next one runs on schedule. Panics inside a pass are
// recovered by the cron chain and logged.
package jobs
