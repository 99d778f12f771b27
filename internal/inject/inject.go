// Package inject posts synthetic key presses to the operating system.
package inject

// Injector defines the interface for synthetic key injection
type Injector interface {
	Tap(vk int) error
}
