// Package medication holds the Medication aggregate and the ImageUpload value object.
//
// A medication exists independently of drones: it is created standalone, may be
// attached to at most one drone through its drone reference, and survives the
// deletion of that drone (the reference is cleared, the medication stays).
package medication
