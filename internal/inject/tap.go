package inject

type keyInjector struct{}

// New creates a new key injector
func New() Injector {
	return &keyInjector{}
}

// Tap presses and releases the key with the given virtual-key code.
// Implementation is platform-specific (see tap_windows.go, tap_darwin.go, etc.)
func (k *keyInjector) Tap(vk int) error {
	return platformTap(vk)
}
