// Package drone contains the Drone aggregate root of the fleet domain.
//
// A Drone owns its configuration (serial number, model, weight limit), its operational
// status (battery capacity, state) and the list of medications attached to it.
//
// Business rules that need more than one aggregate or a policy value (the capacity
// invariant and the battery gate in front of Loading) are implemented by the domain
// services package. The aggregate only guards its own field ranges.
package drone
