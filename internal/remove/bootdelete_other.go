//go:build !windows

package remove

func registerRebootDelete(path string) error {
	return nil
}
