// Package services provides the domain rules of the fleet that do not belong to a
// single aggregate field:
//   - CapacityRuleEngine: used load, available capacity and cumulative load planning
//   - StateTransitionGuard: operational preconditions for state changes
//
// Both services are pure: they read aggregates and return decisions or typed errors
// (OverCapacityError, BatteryTooLowError) and never mutate or persist anything.
// Use case handlers call them before touching the aggregate so that a rejected
// request leaves no partial change behind.
package services
