// SPDX-License-Identifier: EPL-2.0

package device

// Output is the lifecycle shared by every backend binding. Start and Stop
// are idempotent; Close releases the backend and the Output cannot be
// restarted afterwards.
type Output interface {
	Start() error
	Stop() error
	Close() error
}

var (
	_ Output = (*OtoOutput)(nil)
	_ Output = (*NullOutput)(nil)
)
