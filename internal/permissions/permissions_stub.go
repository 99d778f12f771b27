//go:build !darwin

package permissions

// EnsurePermissions is a no-op on platforms that do not gate
// synthetic key events behind a system permission.
func EnsurePermissions() error {
	return nil
}
